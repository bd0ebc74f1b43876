// Command staticlint запускает набор анализаторов кода сервиса, включая проверку
// того, что разрешение имен хостов идет только через пакет resolver.
package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// allowedPackage может обращаться к системному резолверу напрямую
const allowedPackage = "resolver"

// rawLookupNames перечисляет объекты пакета net, выполняющие DNS-запросы
var rawLookupNames = map[string]bool{
	"LookupHost":      true,
	"LookupIP":        true,
	"LookupAddr":      true,
	"LookupCNAME":     true,
	"LookupNetIP":     true,
	"DefaultResolver": true,
}

// RawLookupAnalyzer запрещает прямые DNS-запросы через пакет net вне пакета resolver.
// Такие запросы не ограничены таймаутом и не объединяются между собой.
var RawLookupAnalyzer = &analysis.Analyzer{
	Name:     "rawlookup",
	Doc:      "prohibits direct net.Lookup* and net.DefaultResolver use outside the resolver package",
	Run:      runRawLookupCheck,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func runRawLookupCheck(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() == allowedPackage {
		return nil, nil
	}

	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.SelectorExpr)(nil),
	}

	inspect.Preorder(nodeFilter, func(node ast.Node) {
		sel := node.(*ast.SelectorExpr)
		if !rawLookupNames[sel.Sel.Name] {
			return
		}

		ident, ok := sel.X.(*ast.Ident)
		if !ok {
			return
		}
		pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
		if !ok || pkgName.Imported().Path() != "net" {
			return
		}

		pass.Reportf(sel.Pos(), "direct use of net.%s, resolve hosts through the resolver package", sel.Sel.Name)
	})

	return nil, nil
}
