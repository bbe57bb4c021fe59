// Package main собирает multichecker для проверки кода shorty-web.
//
// Включены:
//   - анализаторы из golang.org/x/tools/go/analysis/passes
//   - все SA анализаторы staticcheck, а также S1000 и U1000
//   - bodyclose: незакрытые тела ответов клиента бэкенда
//   - nilerr: возврат nil при проверенной ошибке
//   - noexit: прямой вызов os.Exit в main
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"strings"

	"github.com/avc-dev/shorty-web/cmd/staticlint/noexit"
	"github.com/gostaticanalysis/nilerr"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/unused"
)

func main() {
	analyzers := []*analysis.Analyzer{
		errorsas.Analyzer,
		httpresponse.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		unusedresult.Analyzer,
		bodyclose.Analyzer,
		nilerr.Analyzer,
		noexit.Analyzer,
	}

	for _, a := range staticcheck.Analyzers {
		if strings.HasPrefix(a.Analyzer.Name, "SA") {
			analyzers = append(analyzers, a.Analyzer)
		}
	}

	// S1000 живет в simple, U1000 в unused
	for _, a := range simple.Analyzers {
		if a.Analyzer.Name == "S1000" {
			analyzers = append(analyzers, a.Analyzer)
		}
	}
	analyzers = append(analyzers, unused.Analyzer.Analyzer)

	multichecker.Main(analyzers...)
}
