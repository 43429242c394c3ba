package usecase

// templateFile describes one starter file shipped with a project template
type templateFile struct {
	Name     string
	FileType string
	Content  string
}

// templateFiles holds the starter files created for each template type
var templateFiles = map[string][]templateFile{
	"portfolio_website": {
		{
			Name:     "index.html",
			FileType: "html",
			Content: `<!DOCTYPE html>
<html>
<head>
  <title>My Portfolio</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <!-- Your code here -->
</body>
</html>`,
		},
		{
			Name:     "style.css",
			FileType: "css",
			Content: `/* Your styles here */
body {
  margin: 0;
  font-family: Arial, sans-serif;
}`,
		},
	},
	"todo_app": {
		{
			Name:     "index.html",
			FileType: "html",
			Content: `<!DOCTYPE html>
<html>
<head>
  <title>Todo App</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <div id="app"></div>
  <script src="script.js"></script>
</body>
</html>`,
		},
		{
			Name:     "style.css",
			FileType: "css",
			Content:  "/* Todo app styles */\n",
		},
		{
			Name:     "script.js",
			FileType: "js",
			Content:  "// Your JavaScript code here\n",
		},
	},
	"calculator": {
		{
			Name:     "index.html",
			FileType: "html",
			Content: `<!DOCTYPE html>
<html>
<head>
  <title>Calculator</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <div class="calculator"></div>
  <script src="script.js"></script>
</body>
</html>`,
		},
		{
			Name:     "style.css",
			FileType: "css",
			Content: `.calculator {
  /* Your calculator styles */
}`,
		},
		{
			Name:     "script.js",
			FileType: "js",
			Content:  "// Calculator logic\n",
		},
	},
}

// ValidTemplateType reports whether t names a known project template
func ValidTemplateType(t string) bool {
	_, ok := templateFiles[t]
	return ok
}
