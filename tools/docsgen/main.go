// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// docsgen renders a markdown page and a tldr page for every awsctl
// subcommand from the live command tree. Examples come from an optional
// examples.yaml in the docs directory.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/awsctl/internal/command"
)

type Flag struct {
	Names []string
	Usage string
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

// Page is one subcommand, such as "ssm params".
type Page struct {
	ID       string
	Group    string
	Name     string
	Short    string
	Usage    string
	Flags    []Flag
	Examples []Example
	Date     string
	Version  string
}

type Outputs struct {
	Template *template.Template
	Folder   string
	Prefix   string
	Suffix   string
}

var funcs = template.FuncMap{
	"flagNames": func(names []string) string {
		out := make([]string, len(names))
		for i, n := range names {
			if len(n) == 1 {
				out[i] = "-" + n
			} else {
				out[i] = "--" + n
			}
		}
		return strings.Join(out, ", ")
	},
}

var markdownTemplate = template.Must(template.New("md").Funcs(funcs).Parse(`# awsctl {{.Group}} {{.Name}}

{{.Short}}

    {{.Usage}}

## Flags
{{range .Flags}}
- ` + "`{{flagNames .Names}}`" + ` {{.Usage}}{{end}}
{{if .Examples}}
## Examples
{{range .Examples}}
{{.Description}}

    {{.Command}}
{{end}}{{end}}
_{{.Version}}, {{.Date}}_
`))

var tldrTemplate = template.Must(template.New("tldr").Funcs(funcs).Parse(`# awsctl {{.Group}} {{.Name}}

> {{.Short}}.
{{range .Examples}}
- {{.Description}}:

` + "`{{.Command}}`" + `
{{end}}`))

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen DOCS_DIR")
		os.Exit(1)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(docs string) error {
	app, err := command.InitApp(context.Background(), []string{"awsctl"})
	if err != nil {
		return err
	}

	examples := map[string][]Example{}
	if data, err := os.ReadFile(filepath.Join(docs, "examples.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &examples); err != nil {
			return fmt.Errorf("examples.yaml: %w", err)
		}
	}

	types := []Outputs{
		{Template: markdownTemplate, Folder: filepath.Join(docs, "commands"), Suffix: ".md"},
		{Template: tldrTemplate, Folder: filepath.Join(docs, "tldr"), Prefix: "awsctl-", Suffix: ".md"},
	}

	for _, p := range collect(app, examples, time.Now(), getVersion()) {
		for _, t := range types {
			if err := os.MkdirAll(t.Folder, 0o755); err != nil {
				return err
			}
			path := filepath.Join(t.Folder, t.Prefix+p.ID+t.Suffix)
			fmt.Println("Generating", path)
			if err := writePage(path, t.Template, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func writePage(path string, tmpl *template.Template, p Page) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render(f, tmpl, p)
}

func render(w io.Writer, tmpl *template.Template, p Page) error {
	if err := tmpl.Execute(w, p); err != nil {
		return fmt.Errorf("render %s: %w", p.ID, err)
	}
	return nil
}

// collect walks the service groups of app. examples is keyed by
// "<group> <subcommand>".
func collect(app *cli.Command, examples map[string][]Example, now time.Time, version string) []Page {
	var pages []Page
	for _, group := range app.Commands {
		for _, sub := range group.Commands {
			p := Page{
				ID:       group.Name + "-" + sub.Name,
				Group:    group.Name,
				Name:     sub.Name,
				Short:    sub.Usage,
				Usage:    sub.UsageText,
				Examples: examples[group.Name+" "+sub.Name],
				Date:     now.Format("January 2, 2006"),
				Version:  version,
			}
			for _, f := range sub.Flags {
				if v, ok := f.(interface{ IsVisible() bool }); ok && !v.IsVisible() {
					continue
				}
				var usage string
				if u, ok := f.(interface{ GetUsage() string }); ok {
					usage = u.GetUsage()
				}
				p.Flags = append(p.Flags, Flag{Names: f.Names(), Usage: usage})
			}
			sort.Slice(p.Flags, func(i, j int) bool {
				return p.Flags[i].Names[0] < p.Flags[j].Names[0]
			})
			pages = append(pages, p)
		}
	}
	return pages
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
