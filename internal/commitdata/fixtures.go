package commitdata

// DemoDiffPlaceholder is returned in demo mode for files with no fixture
// diff.
const DemoDiffPlaceholder = "(no demo diff available)"

// Demo fixtures: a small self-contained commit used when no repository is
// loaded, so the narrative view can be explored without any git data.
var demoFiles = []FileChange{
	{Path: "cmd/widget/main.go", Status: StatusAdded},
	{Path: "internal/parser/parser.go", Status: StatusModified},
	{Path: "docs/legacy_notes.md", Status: StatusDeleted},
}

var demoDiffs = map[string]string{
	"cmd/widget/main.go": `--- /dev/null
+++ b/cmd/widget/main.go
@@ -0,0 +1,5 @@
+package main
+
+func main() {
+	run()
+}
`,
	"internal/parser/parser.go": `--- a/internal/parser/parser.go
+++ b/internal/parser/parser.go
@@ -10,7 +10,7 @@
-	return parse(input)
+	return parseStrict(input)
`,
}

// demoFilesForNode returns a fresh copy so callers cannot mutate the
// fixture list.
func demoFilesForNode() []FileChange {
	files := make([]FileChange, len(demoFiles))
	copy(files, demoFiles)
	return files
}
