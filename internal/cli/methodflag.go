package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// methodValue is a pflag.Value restricting a flag to a fixed set of method
// names, so bad names are rejected at parse time with the valid set in the
// error message.
type methodValue struct {
	value string
	valid []string
}

var _ pflag.Value = (*methodValue)(nil)

// newMethodValue creates a methodValue with the given default and valid set.
func newMethodValue(def string, valid []string) *methodValue {
	return &methodValue{value: def, valid: valid}
}

func (m *methodValue) String() string {
	return m.value
}

func (m *methodValue) Set(s string) error {
	for _, v := range m.valid {
		if s == v {
			m.value = s
			return nil
		}
	}
	return fmt.Errorf("must be one of: %s", strings.Join(m.valid, ", "))
}

func (m *methodValue) Type() string {
	return "method"
}
