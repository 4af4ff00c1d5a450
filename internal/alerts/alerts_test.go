package alerts

import (
	"testing"
	"time"

	"github.com/KromaEnergia/api-contracts/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2023, 5, 10, 14, 30, 0, 0, time.UTC)

func overviewDueIn(days int) contract.Overview {
	return contract.Overview{
		ContractorName: "Acme Corp",
		DueDate:        today.AddDate(0, 0, days),
		ContractStatus: contract.StatusActive,
	}
}

func TestDeadlineBoundaries(t *testing.T) {
	// due exactly in daysFilter days is included, one day later is not
	deadline := Deadline(today, 5)

	dueInFive := overviewDueIn(5).DueDate
	assert.True(t, dueInFive.Before(deadline))

	dueInSix := overviewDueIn(6).DueDate
	assert.False(t, dueInSix.Before(deadline))

	// with a tighter filter the same contract falls out
	assert.False(t, dueInFive.Before(Deadline(today, 4)))
}

func TestAnnotateComputesDaysAndSorts(t *testing.T) {
	overviews := []contract.Overview{
		overviewDueIn(5),
		overviewDueIn(-3), // overdue
		overviewDueIn(1),
	}
	alerts := Annotate(overviews, today)

	require.Len(t, alerts, 3)
	assert.Equal(t, -3, alerts[0].DaysUntilDueDate)
	assert.Equal(t, 1, alerts[1].DaysUntilDueDate)
	assert.Equal(t, 5, alerts[2].DaysUntilDueDate)
}

func TestAnnotateIgnoresTimeOfDay(t *testing.T) {
	o := contract.Overview{
		DueDate: time.Date(2023, 5, 15, 2, 0, 0, 0, time.UTC),
	}
	alerts := Annotate([]contract.Overview{o}, today)
	require.Len(t, alerts, 1)
	assert.Equal(t, 5, alerts[0].DaysUntilDueDate)
}
