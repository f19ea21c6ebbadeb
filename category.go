package mlqueue

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category represents the kind of service an [Entity] is waiting for.
type Category struct {
	category
}

// ParseCategory creates a new [Category] from the given value. Values that do
// not name a known category are accepted and parsed as
// [Categories].Unknown, which carries no weight and the default service
// duration.
func ParseCategory(c any) Category {
	switch v := c.(type) {
	case Category:
		return v
	case string:
		return Category{stringToCategory(v)}
	case fmt.Stringer:
		return Category{stringToCategory(v.String())}
	case int:
		return Category{intToCategory(v)}
	case int64:
		return Category{intToCategory(int(v))}
	case int32:
		return Category{intToCategory(int(v))}
	default:
		return Category{categoryUnknown}
	}
}

func (c Category) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

func (c *Category) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*c = ParseCategory(s)
	return nil
}

func (c Category) MarshalYAML() (any, error) {
	return c.String(), nil
}

func (c *Category) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*c = ParseCategory(s)
	return nil
}

// Weight returns the contribution of the category to an entity's priority
// score.
func (c Category) Weight() float64 {
	return categoryWeights[c.category]
}

// ServiceDuration returns the number of minutes it takes to serve an entity
// of this category. Unknown categories take five minutes.
func (c Category) ServiceDuration() int {
	if d, ok := categoryDurations[c.category]; ok {
		return d
	}
	return defaultServiceDuration
}

// Categories is a more typical enum like structure from other languages,
// ported to Go. It may be used to reference a [Category] value by name.
var Categories = categoryContainer{
	Unknown:        Category{categoryUnknown},
	VIP:            Category{categoryVIP},
	EmergencyCase:  Category{categoryEmergencyCase},
	LoanRequest:    Category{categoryLoanRequest},
	MoneyDeposit:   Category{categoryMoneyDeposit},
	CashWithdrawal: Category{categoryCashWithdrawal},
}

// All returns all known categories, excluding Unknown.
func (c categoryContainer) All() []Category {
	return []Category{c.VIP, c.EmergencyCase, c.LoanRequest, c.MoneyDeposit, c.CashWithdrawal}
}

type category int

const (
	categoryUnknown category = iota
	categoryVIP
	categoryEmergencyCase
	categoryLoanRequest
	categoryMoneyDeposit
	categoryCashWithdrawal
)

const defaultServiceDuration = 5

var (
	strCategoryMap = map[category]string{
		categoryUnknown:        "Unknown",
		categoryVIP:            "VIP",
		categoryEmergencyCase:  "Emergency Case",
		categoryLoanRequest:    "Loan Request",
		categoryMoneyDeposit:   "Money Deposit",
		categoryCashWithdrawal: "Cash Withdrawal",
	}

	// Keys are normalised with normaliseCategory before lookup.
	typeCategoryMap = map[string]category{
		"unknown":         categoryUnknown,
		"vip":             categoryVIP,
		"emergency-case":  categoryEmergencyCase,
		"loan-request":    categoryLoanRequest,
		"money-deposit":   categoryMoneyDeposit,
		"cash-withdrawal": categoryCashWithdrawal,
	}

	categoryWeights = map[category]float64{
		categoryVIP:            6.0,
		categoryEmergencyCase:  3.0,
		categoryLoanRequest:    2.0,
		categoryMoneyDeposit:   1.5,
		categoryCashWithdrawal: 1.0,
	}

	categoryDurations = map[category]int{
		categoryCashWithdrawal: 2,
		categoryMoneyDeposit:   5,
		categoryLoanRequest:    10,
		categoryEmergencyCase:  3,
		categoryVIP:            3,
	}
)

func (c category) String() string {
	if s, ok := strCategoryMap[c]; ok {
		return s
	}
	return strCategoryMap[categoryUnknown]
}

func (c category) IsValid() bool {
	return c != categoryUnknown && c.isKnown()
}

func (c category) isKnown() bool {
	_, ok := strCategoryMap[c]
	return ok
}

func intToCategory(i int) category {
	if c := category(i); c.isKnown() {
		return c
	}
	return categoryUnknown
}

// "Cash Withdrawal", "cash_withdrawal" and "CASH-WITHDRAWAL" all name the
// same category.
func normaliseCategory(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(s)
}

func stringToCategory(s string) category {
	if v, ok := typeCategoryMap[normaliseCategory(s)]; ok {
		return v
	}
	return categoryUnknown
}

type categoryContainer struct {
	Unknown        Category
	VIP            Category
	EmergencyCase  Category
	LoanRequest    Category
	MoneyDeposit   Category
	CashWithdrawal Category
}
