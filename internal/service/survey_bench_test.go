package service

import (
	"fmt"
	"testing"

	"github.com/surveydash/survey-server/pkg/csvnorm"
)

func buildBenchDataset(tb testing.TB, respondents, questions int) *csvnorm.Dataset {
	tb.Helper()

	columns := []string{"Submitted Date"}
	for q := 0; q < questions; q++ {
		columns = append(columns, fmt.Sprintf("Q%d", q+1))
	}

	records := make([]csvnorm.Record, 0, respondents)
	for i := 0; i < respondents; i++ {
		record := make(csvnorm.Record, len(columns))
		record["Submitted Date"] = fmt.Sprintf("2024-01-%02d", i%28+1)
		for q := 0; q < questions; q++ {
			record[fmt.Sprintf("Q%d", q+1)] = LikertScale[(i+q)%len(LikertScale)]
		}
		records = append(records, record)
	}

	return &csvnorm.Dataset{Columns: columns, Records: records}
}

func BenchmarkSummarize(b *testing.B) {
	ds := buildBenchDataset(b, 1000, 12)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Summarize(ds); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRankedDistributions(b *testing.B) {
	ds := buildBenchDataset(b, 1000, 12)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := RankedDistributions(ds); err != nil {
			b.Fatal(err)
		}
	}
}
