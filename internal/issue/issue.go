// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	CodesMissingId Id = iota + 1
	ConfigMissingId
	CodesDecodeFailedId
	CodesWriteFailedId
	SettingsLoadFailedId
)

type (
	Id int

	MarkdownMsg string

	// Issue is a catalogued explanation shown when the user has to act.
	Issue struct {
		id    Id
		title string
		mdMsg MarkdownMsg
	}
)

var (
	render = glamour.Render

	codesMissingIssue = &Issue{
		id:    CodesMissingId,
		title: "codes artifact missing",
		mdMsg: `
# The codes file is gone

codefree keeps its command table in an encoded codes file, compiled from
the configuration file on every start.

## Things you can try
- Keep the configuration file intact: it is the only source of truth.
- Run the program again after the restore attempt:
~~~
$ codefree
~~~
- Or rebuild the codes file explicitly:
~~~
$ codefree compile
~~~`,
	}

	configMissingIssue = &Issue{
		id:    ConfigMissingId,
		title: "configuration file missing",
		mdMsg: `
# No configuration file

The codes file cannot be restored without the configuration file.

## Things you can try
- Create a starter configuration:
~~~
$ codefree init
~~~
- Add one binding per line:
~~~
label greet=function{print}
~~~`,
	}

	codesDecodeFailedIssue = &Issue{
		id:    CodesDecodeFailedId,
		title: "codes artifact unreadable",
		mdMsg: `
# The codes file could not be decoded

The codes file is not valid base64 text, or it does not hold UTF-8.
It is derived data and should never be edited by hand.

## Things you can try
- Regenerate it from the configuration file:
~~~
$ codefree compile
~~~`,
	}

	codesWriteFailedIssue = &Issue{
		id:    CodesWriteFailedId,
		title: "codes artifact not writable",
		mdMsg: `
# The codes file could not be written

## Things you can try
- Check the permissions of the working directory.
- Point codefree at another directory with ` + "`--dir`" + `.`,
	}

	settingsLoadFailedIssue = &Issue{
		id:    SettingsLoadFailedId,
		title: "settings not loaded",
		mdMsg: `
# Settings could not be loaded

## Things you can try
- Inspect the effective settings:
~~~
$ codefree config show
~~~
- Validate the CUE syntax of your settings file.`,
	}

	issues = map[Id]*Issue{
		codesMissingIssue.Id():       codesMissingIssue,
		configMissingIssue.Id():      configMissingIssue,
		codesDecodeFailedIssue.Id():  codesDecodeFailedIssue,
		codesWriteFailedIssue.Id():   codesWriteFailedIssue,
		settingsLoadFailedIssue.Id(): settingsLoadFailedIssue,
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) Title() string {
	return i.title
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the markdown message with the given glamour style
// ("auto", "dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

// Values returns every catalogued issue ordered by id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return slices.Clip(out)
}

// Get returns the issue for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}

// RenderMarkdown renders arbitrary markdown with the same glamour pipeline
// used for issues.
func RenderMarkdown(md, stylePath string) (string, error) {
	return render(md, stylePath)
}
