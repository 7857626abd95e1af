package roster

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/rollcall/model"
)

func rec(name string, start *int) model.Record {
	return model.Record{Name: name, StartYear: start}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name string
		in   []model.Record
		want []model.Record
	}{
		{
			name: "empty",
			in:   nil,
			want: []model.Record{},
		},
		{
			name: "first occurrence kept",
			in: []model.Record{
				{Name: "Ann Bell", StartYear: model.Int(1999), EndYear: model.Int(2003)},
				rec("Bo Grant", model.Int(2003)),
				{Name: "Ann Bell", StartYear: model.Int(1999), EndYear: model.Int(2001)},
			},
			want: []model.Record{
				{Name: "Ann Bell", StartYear: model.Int(1999), EndYear: model.Int(2003)},
				rec("Bo Grant", model.Int(2003)),
			},
		},
		{
			name: "same name different terms",
			in:   []model.Record{rec("Ann Bell", model.Int(1999)), rec("Ann Bell", model.Int(2011))},
			want: []model.Record{rec("Ann Bell", model.Int(1999)), rec("Ann Bell", model.Int(2011))},
		},
		{
			name: "unknown start year is a key",
			in:   []model.Record{rec("Ann Bell", nil), rec("Ann Bell", nil), rec("Ann Bell", model.Int(1999))},
			want: []model.Record{rec("Ann Bell", nil), rec("Ann Bell", model.Int(1999))},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dedupe(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Dedupe() mismatch (-want +got):\n%s", diff)
			}
			again := Dedupe(got)
			if diff := cmp.Diff(got, again); diff != "" {
				t.Errorf("Dedupe() not idempotent (-first +second):\n%s", diff)
			}
		})
	}
}
