// Command gincontext reports calls that pass a *gin.Context where a
// context.Context is expected. The gin context does not carry the request's
// span or request id, so handlers must hand ctx.Request.Context() down.
package main

import (
	"flag"
	"go/ast"
	"go/types"
	"log"
	"os"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"
	"golang.org/x/tools/go/packages"
)

const defaultLintPkgs = "opencsg.com/github-team-membership/api/handler,opencsg.com/github-team-membership/api/middleware"

var lintPkgs map[string]bool

func main() {
	tagPtr := flag.String("tags", "", "build tags")
	pkgsPtr := flag.String("pkgs", defaultLintPkgs, "comma separated import paths to lint")
	flag.Parse()
	lintPkgs = parsePkgs(*pkgsPtr)

	cfg := &packages.Config{
		Mode:       packages.LoadAllSyntax,
		BuildFlags: []string{"-tags=" + *tagPtr},
	}
	initial, err := packages.Load(cfg, "./...")
	if err != nil {
		log.Fatal(err)
	}
	if len(initial) == 0 {
		log.Fatalf("no initial packages")
	}

	graph, err := checker.Analyze([]*analysis.Analyzer{analyzer}, initial, nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := graph.PrintText(os.Stderr, -1); err != nil {
		log.Fatal(err)
	}

	exitcode := 0
	graph.All()(func(act *checker.Action) bool {
		if len(act.Diagnostics) > 0 {
			exitcode = 1
		}
		return true
	})
	os.Exit(exitcode)
}

func parsePkgs(s string) map[string]bool {
	pkgs := make(map[string]bool)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			pkgs[p] = true
		}
	}
	return pkgs
}

var analyzer = &analysis.Analyzer{
	Name: "gincontext",
	Doc:  "Find gin contexts passed as context.Context",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg == nil || !lintPkgs[pass.Pkg.Path()] {
		return nil, nil
	}
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			ce, ok := n.(*ast.CallExpr)
			if !ok || len(ce.Args) < 1 {
				return true
			}
			if !isGinContext(pass.TypesInfo.TypeOf(ce.Args[0])) {
				return true
			}
			sig, ok := pass.TypesInfo.TypeOf(ce.Fun).(*types.Signature)
			if !ok || sig.Params().Len() < 1 || !isStdContext(sig.Params().At(0).Type()) {
				return true
			}

			arg := types.ExprString(ce.Args[0])
			pass.Report(analysis.Diagnostic{
				Pos:     ce.Pos(),
				Message: "should use " + arg + ".Request.Context()",
				SuggestedFixes: []analysis.SuggestedFix{{
					Message: "use gin request context",
					TextEdits: []analysis.TextEdit{{
						Pos:     ce.Args[0].Pos(),
						End:     ce.Args[0].End(),
						NewText: []byte(arg + ".Request.Context()"),
					}},
				}},
			})
			return true
		})
	}
	return nil, nil
}

// isGinContext matches *gin.Context.
func isGinContext(t types.Type) bool {
	if t == nil {
		return false
	}
	ptr, ok := t.(*types.Pointer)
	if !ok {
		return false
	}
	return isNamed(ptr.Elem(), "github.com/gin-gonic/gin", "Context")
}

func isStdContext(t types.Type) bool {
	return isNamed(t, "context", "Context")
}

func isNamed(t types.Type, pkgPath, name string) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == pkgPath && obj.Name() == name
}
