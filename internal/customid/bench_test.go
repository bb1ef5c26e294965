package customid

import (
	"testing"

	"github.com/osse101/Stockpile_Go/internal/domain"
)

var benchSegments = []domain.IDSegment{
	fixed("INV-"),
	seg(domain.SegmentDate, "yyyy-"),
	seg(domain.SegmentRandom32Bit, "X8_"),
	seg(domain.SegmentSequence, "D6"),
}

func BenchmarkCompile(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Compile(benchSegments)
	}
}

func BenchmarkGenerate(b *testing.B) {
	tmpl := Compile(benchSegments)
	gen := NewGenerator()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gen.Generate(tmpl, int64(i)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidateEdit(b *testing.B) {
	tmpl := Compile(benchSegments)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tmpl.ValidateEdit("INV-2026-0A1B2C3D_000041", "INV-2026-0A1B2C3D_000042")
	}
}
