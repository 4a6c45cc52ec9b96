package pure_test

import (
	"testing"

	"github.com/on-the-ground/tabulated_go/functions"
	"github.com/on-the-ground/tabulated_go/functions/basic"
	"github.com/on-the-ground/tabulated_go/functions/meta"
	"github.com/on-the-ground/tabulated_go/pure"
)

func expensive() functions.Function {
	f := functions.Function(basic.Exp{})
	for i := 0; i < 8; i++ {
		f = meta.Composition(basic.Sin{}, meta.Sum(f, basic.Cos{}))
	}
	return f
}

func BenchmarkIntegrateNaive(b *testing.B) {
	f := expensive()
	for i := 0; i < b.N; i++ {
		_, _ = functions.Integrate(f, 0, 1, 1e-4)
	}
}

func BenchmarkIntegrateTableized(b *testing.B) {
	f := expensive()
	for i := 0; i < b.N; i++ {
		_, _ = functions.Integrate(pure.Tableize(f, 2), 0, 1, 1e-4)
	}
}

func BenchmarkTabulatedEvaluate(b *testing.B) {
	tab, err := functions.Tabulate(basic.Exp{}, 0, 1, 1000)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tab.Evaluate(0.999)
	}
}
