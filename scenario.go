package mlqueue

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrDuplicateID is returned when two arrivals in a scenario share an id.
	ErrDuplicateID = errors.New("scenario: duplicate arrival id")

	// ErrNegativeWaiting is returned when an arrival has already waited a
	// negative number of minutes.
	ErrNegativeWaiting = errors.New("scenario: negative waiting time")
)

// Arrival describes an entity joining the queue at the start of a scenario.
type Arrival struct {
	ID        int      `yaml:"id" json:"id"`
	Category  Category `yaml:"category" json:"category"`
	Emergency bool     `yaml:"emergency" json:"emergency"`
	Waiting   int      `yaml:"waiting" json:"waiting"`
}

// Scenario is an ordered list of arrivals. Arrivals are enqueued in the order
// they are listed.
type Scenario struct {
	Name     string    `yaml:"name" json:"name"`
	Arrivals []Arrival `yaml:"arrivals" json:"arrivals"`
}

// LoadScenario decodes a [Scenario] from YAML. JSON documents are valid YAML
// and are accepted as well. Unknown categories are accepted and decode as
// [Categories].Unknown.
func LoadScenario(r io.Reader) (Scenario, error) {
	var s Scenario
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Scenario{}, errors.New("scenario: empty document")
		}
		return Scenario{}, errors.Wrap(err, "scenario: decode")
	}

	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Validate checks that arrival ids are unique and waiting times are not
// negative.
func (s Scenario) Validate() error {
	seen := make(map[int]bool, len(s.Arrivals))
	for i, a := range s.Arrivals {
		if seen[a.ID] {
			return errors.Wrapf(ErrDuplicateID, "arrival %d: id %d", i, a.ID)
		}
		seen[a.ID] = true

		if a.Waiting < 0 {
			return errors.Wrapf(ErrNegativeWaiting, "arrival %d: %d min", i, a.Waiting)
		}
	}
	return nil
}

// Entities returns a new [Entity] for every arrival, in order.
func (s Scenario) Entities() []Entity {
	entities := make([]Entity, 0, len(s.Arrivals))
	for _, a := range s.Arrivals {
		entities = append(entities, NewEntity(a.ID, a.Category, a.Emergency, a.Waiting))
	}
	return entities
}

// DefaultScenario returns the built-in scenario of eight individuals with a
// mix of categories, emergency flags and prior waiting times.
func DefaultScenario() Scenario {
	return Scenario{
		Name: "default",
		Arrivals: []Arrival{
			{ID: 1, Category: Categories.CashWithdrawal, Waiting: 10},
			{ID: 2, Category: Categories.LoanRequest, Waiting: 15},
			{ID: 3, Category: Categories.EmergencyCase, Emergency: true, Waiting: 5},
			{ID: 4, Category: Categories.MoneyDeposit, Waiting: 20},
			{ID: 5, Category: Categories.VIP, Waiting: 2},
			{ID: 6, Category: Categories.LoanRequest, Waiting: 30},
			{ID: 7, Category: Categories.CashWithdrawal, Waiting: 5},
			{ID: 8, Category: Categories.CashWithdrawal, Waiting: 15},
		},
	}
}
