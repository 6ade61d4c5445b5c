package structmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingEngine struct{}

func (e *failingEngine) Map(dest, src interface{}) error {
	return errors.New("mapping failed")
}

type panickyEngine struct{}

func (e *panickyEngine) Map(dest, src interface{}) error {
	panic("mapper blew up")
}

func TestSafe(t *testing.T) {
	var testCases = []struct {
		description string
		service     *Service
		src         interface{}
		expectOk    bool
		expect      EmployeeView
	}{
		{
			description: "successful map",
			service:     New(),
			src:         Employee{Id: 1, Name: "ann"},
			expectOk:    true,
			expect:      EmployeeView{Id: 1, Name: "ann"},
		},
		{
			description: "engine error yields zero value",
			service:     NewWith(&failingEngine{}),
			src:         Employee{Id: 1},
		},
		{
			description: "engine panic yields zero value",
			service:     NewWith(&panickyEngine{}),
			src:         Employee{Id: 1},
		},
	}

	for _, testCase := range testCases {
		actual, ok := Safe[EmployeeView](testCase.service, testCase.src)
		assert.EqualValues(t, testCase.expectOk, ok, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestOrDefault(t *testing.T) {
	fallback := EmployeeView{Id: -1, Name: "unknown"}

	var testCases = []struct {
		description string
		service     *Service
		src         interface{}
		expect      EmployeeView
	}{
		{
			description: "successful map ignores default",
			service:     New(),
			src:         Employee{Id: 1, Name: "ann"},
			expect:      EmployeeView{Id: 1, Name: "ann"},
		},
		{
			description: "engine error substitutes default",
			service:     NewWith(&failingEngine{}),
			src:         Employee{Id: 1},
			expect:      fallback,
		},
		{
			description: "engine panic substitutes default",
			service:     NewWith(&panickyEngine{}),
			src:         Employee{Id: 1},
			expect:      fallback,
		},
	}

	for _, testCase := range testCases {
		actual := OrDefault(testCase.service, testCase.src, fallback)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestIf(t *testing.T) {
	srv := New()

	t.Run("predicate holds", func(t *testing.T) {
		calls := 0
		actual, mapped, err := If[EmployeeView](srv, Employee{Id: 1, Name: "ann"}, func() bool {
			calls++
			return true
		})
		assert.Nil(t, err)
		assert.True(t, mapped)
		assert.EqualValues(t, 1, calls)
		assert.EqualValues(t, EmployeeView{Id: 1, Name: "ann"}, actual)
	})

	t.Run("predicate does not hold", func(t *testing.T) {
		calls := 0
		actual, mapped, err := If[EmployeeView](srv, Employee{Id: 1}, func() bool {
			calls++
			return false
		})
		assert.Nil(t, err)
		assert.False(t, mapped)
		assert.EqualValues(t, 1, calls)
		assert.EqualValues(t, EmployeeView{}, actual)
	})

	t.Run("engine error propagates", func(t *testing.T) {
		_, mapped, err := If[EmployeeView](NewWith(&failingEngine{}), Employee{}, func() bool {
			return true
		})
		assert.NotNil(t, err)
		assert.False(t, mapped)
	})
}

func TestUnless(t *testing.T) {
	srv := New()
	calls := 0
	actual, mapped, err := Unless[EmployeeView](srv, Employee{Id: 2, Name: "bob"}, func() bool {
		calls++
		return false
	})
	assert.Nil(t, err)
	assert.True(t, mapped)
	assert.EqualValues(t, 1, calls)
	assert.EqualValues(t, EmployeeView{Id: 2, Name: "bob"}, actual)

	_, mapped, err = Unless[EmployeeView](srv, Employee{Id: 2}, func() bool { return true })
	assert.Nil(t, err)
	assert.False(t, mapped)
}
