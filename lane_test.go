package mlqueue_test

import (
	"testing"

	"github.com/tomasbasham/mlqueue"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		entity mlqueue.Entity
		want   mlqueue.Lane
	}{
		"vip is high": {
			entity: mlqueue.NewEntity(1, mlqueue.Categories.VIP, false, 0),
			want:   mlqueue.Lanes.High,
		},
		"emergency case is high": {
			entity: mlqueue.NewEntity(1, mlqueue.Categories.EmergencyCase, false, 0),
			want:   mlqueue.Lanes.High,
		},
		"emergency flag is high regardless of category": {
			entity: mlqueue.NewEntity(1, mlqueue.Categories.CashWithdrawal, true, 0),
			want:   mlqueue.Lanes.High,
		},
		"emergency flag on unknown category is high": {
			entity: mlqueue.NewEntity(1, mlqueue.Categories.Unknown, true, 0),
			want:   mlqueue.Lanes.High,
		},
		"loan request is medium regardless of score": {
			entity: mlqueue.NewEntity(1, mlqueue.Categories.LoanRequest, false, 0),
			want:   mlqueue.Lanes.Medium,
		},
		"money deposit is medium regardless of score": {
			entity: mlqueue.NewEntity(1, mlqueue.Categories.MoneyDeposit, false, 0),
			want:   mlqueue.Lanes.Medium,
		},
		"cash withdrawal below threshold is low": {
			entity: mlqueue.NewEntity(1, mlqueue.Categories.CashWithdrawal, false, 9),
			want:   mlqueue.Lanes.Low,
		},
		"cash withdrawal at threshold is medium": {
			entity: mlqueue.NewEntity(1, mlqueue.Categories.CashWithdrawal, false, 10),
			want:   mlqueue.Lanes.Medium,
		},
		"unknown category below threshold is low": {
			entity: mlqueue.NewEntity(1, mlqueue.Categories.Unknown, false, 14),
			want:   mlqueue.Lanes.Low,
		},
		"unknown category at threshold is medium": {
			entity: mlqueue.NewEntity(1, mlqueue.Categories.Unknown, false, 15),
			want:   mlqueue.Lanes.Medium,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := mlqueue.Classify(tt.entity)
			if got != tt.want {
				t.Errorf("mismatch:\n  got:  %q\n  want: %q", got, tt.want)
			}
		})
	}
}

func TestLaneContainer(t *testing.T) {
	t.Parallel()

	var got []string
	for _, lane := range mlqueue.Lanes.All() {
		got = append(got, lane.String())
	}

	want := []string{"High", "Medium", "Low"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mismatch:\n  got:  %#v\n  want: %#v", got, want)
			break
		}
	}
}
