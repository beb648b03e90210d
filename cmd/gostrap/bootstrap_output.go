package main

import (
	"strconv"
	"strings"

	"github.com/gorewood/gostrap/internal/bootstrap"
	"github.com/gorewood/gostrap/internal/output"
)

// cliReporter renders bootstrap progress; silent in JSON mode.
type cliReporter struct {
	printer *output.Printer
}

func newCLIReporter(printer *output.Printer) bootstrap.Reporter {
	if printer.IsJSON() {
		return bootstrap.NopReporter{}
	}
	return &cliReporter{printer: printer}
}

func (r *cliReporter) Stage(title string) {
	r.printer.Section(title)
}

func (r *cliReporter) Step(message string) {
	r.printer.Step("%s", message)
}

func (r *cliReporter) Warn(message string) {
	r.printer.Warn("%s", message)
}

// printHeader prints the resolved plan before any work starts.
func printHeader(printer *output.Printer, plan bootstrap.Plan) {
	printer.Section("Go Template Bootstrap")
	printer.KeyValue("Project name", plan.Identity.Name+" "+printer.Dim("("+plan.NameSource+")"))
	printer.KeyValue("Module", plan.Identity.ModulePath())
	printer.KeyValue("Target", plan.Target)
	printer.KeyValue("Template", plan.TemplateURL)
}

// printNextSteps closes a successful run.
func printNextSteps(printer *output.Printer, result *bootstrap.Result) {
	printer.Println()
	printer.Println(printer.Accent("Bootstrap complete!") + " " + printer.Dim(result.Target))
	printer.Println()

	steps := []struct {
		title    string
		commands []string
	}{
		{"Install Go toolchain (if not already installed):", []string{"mise install", "# OR download from: https://go.dev/dl/"}},
		{"Build the project:", []string{"go build ./...", "# OR using task:", "task build"}},
		{"Run tests:", []string{"go test ./...", "# OR using task with coverage:", "task test"}},
		{"Check code quality:", []string{"task validate"}},
		{"Start coding!", nil},
	}

	var b strings.Builder
	for i, step := range steps {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strconv.Itoa(i+1) + ". " + step.title)
		for _, c := range step.commands {
			b.WriteString("\n   " + printer.Accent(c))
		}
	}
	printer.Box("Next steps", b.String())
}
