package main

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/deepequalerrors"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/ifaceassert"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/go-critic/go-critic/checkers/analyzer"
	"github.com/kisielk/errcheck/errcheck"
)

// disabledStaticcheck отключает проверки SA, не применимые к сервису
var disabledStaticcheck = map[string]bool{
	"SA1019": true, // использование устаревших API отслеживается по релизам Go
}

// enabledStylecheck перечисляет проверки ST, совместимые с русскоязычными комментариями
var enabledStylecheck = map[string]bool{
	"ST1005": true, // формат строк ошибок
	"ST1012": true, // имена переменных ошибок с префиксом Err
	"ST1016": true, // единообразные имена получателей
	"ST1019": true, // повторный импорт пакета
}

func main() {
	multichecker.Main(analyzers()...)
}

// analyzers собирает набор проверок для кода сервиса
func analyzers() []*analysis.Analyzer {
	checks := []*analysis.Analyzer{
		RawLookupAnalyzer,

		// Сервис работает с контекстами, мьютексами, HTTP-ответами и JSON
		assign.Analyzer,
		atomic.Analyzer,
		bools.Analyzer,
		composite.Analyzer,
		copylock.Analyzer,
		deepequalerrors.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		ifaceassert.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		stdmethods.Analyzer,
		structtag.Analyzer,
		tests.Analyzer,
		unmarshal.Analyzer,
		unreachable.Analyzer,
		unusedresult.Analyzer,

		analyzer.Analyzer, // go-critic
		errcheck.Analyzer,
	}

	for _, v := range staticcheck.Analyzers {
		if !disabledStaticcheck[v.Analyzer.Name] {
			checks = append(checks, v.Analyzer)
		}
	}

	// ST1000 и ST1020-ST1022 требуют английских doc-комментариев, поэтому включены выборочно
	for _, v := range stylecheck.Analyzers {
		if enabledStylecheck[v.Analyzer.Name] {
			checks = append(checks, v.Analyzer)
		}
	}

	for _, v := range simple.Analyzers {
		checks = append(checks, v.Analyzer)
	}

	return checks
}
