package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CompanyName is one of the legal entities a project is contracted under.
type CompanyName string

const (
	CompanyAirdeRealEstate CompanyName = "Airde Real Estate"
	CompanyAirdeDeveloper  CompanyName = "Airde Developer"
	CompanyUniqueRealcon   CompanyName = "Unique Realcon"
)

// CompanyNames lists the contracting entities.
var CompanyNames = []CompanyName{
	CompanyAirdeRealEstate,
	CompanyAirdeDeveloper,
	CompanyUniqueRealcon,
}

func (c CompanyName) String() string {
	return string(c)
}

func (c CompanyName) IsValid() bool {
	for _, known := range CompanyNames {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCompanyName validates s against the known companies.
func ParseCompanyName(s string) (CompanyName, error) {
	c := CompanyName(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown company %q", s)
	}
	return c, nil
}

func (c CompanyName) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

func (c *CompanyName) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*c = CompanyName(str)
	return nil
}

func (c CompanyName) Value() (driver.Value, error) {
	return string(c), nil
}

func (c *CompanyName) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*c = CompanyName(v)
	case []byte:
		*c = CompanyName(string(v))
	case nil:
		*c = ""
	}
	return nil
}
