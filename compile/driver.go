package compile

import (
	"fmt"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/astview/unparse"
)

// Result is one render outcome. Degraded output is still text: it holds a
// diagnostic block instead of (or in addition to) rendered source.
type Result struct {
	Text     string
	Degraded bool
}

// Driver runs the front end to a phase and unparses the resulting tree.
// Its consumer is an interactive inspector, so it must always come back
// with renderable text: compilation failures and unexpected panics both
// land in the output as diagnostics, never as raised errors.
type Driver struct {
	frontend Frontend
	opts     Options
	log      commonlog.Logger
}

func NewDriver(frontend Frontend, opts Options) *Driver {
	return &Driver{
		frontend: frontend,
		opts:     opts,
		log:      commonlog.GetLogger("astview.compile"),
	}
}

// Render compiles source up to the requested phase and renders the tree.
func (d *Driver) Render(source []byte, until Phase) (result Result) {
	defer func() {
		if rec := recover(); rec != nil {
			d.log.Errorf("render recovered: %v", rec)
			result = Result{Text: diagnostic(fmt.Sprintf("%v", rec)), Degraded: true}
		}
	}()

	module, err := d.frontend.Compile(source, until, d.opts)
	if err != nil {
		d.log.Infof("compilation stopped before %s: %s", until, err)
		return Result{Text: diagnostic(err.Error()), Degraded: true}
	}

	text := unparse.Render(module,
		unparse.WithScriptFreeForm(d.opts.ShowScriptFreeForm),
		unparse.WithScriptClass(d.opts.ShowScriptClass),
	)
	return Result{Text: text}
}

func diagnostic(message string) string {
	var sb strings.Builder
	sb.WriteString("Unable to produce AST for this phase due to earlier compilation error:\n")
	for _, line := range strings.Split(message, "\n") {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("Fix the above error(s) and then press Refresh\n")
	return sb.String()
}
