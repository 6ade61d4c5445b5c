package structmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartial(t *testing.T) {
	src := Employee{Id: 1, Name: "ann", Email: "ann@corp", Salary: 10}

	var testCases = []struct {
		description string
		service     *Service
		fields      []string
		expect      EmployeeView
	}{
		{
			description: "only named members populated",
			service:     New(),
			fields:      []string{"Id", "Name"},
			expect:      EmployeeView{Id: 1, Name: "ann"},
		},
		{
			description: "empty set populates nothing",
			service:     New(),
			fields:      nil,
			expect:      EmployeeView{},
		},
		{
			description: "unknown names never match",
			service:     New(),
			fields:      []string{"Id", "Missing"},
			expect:      EmployeeView{Id: 1},
		},
		{
			description: "foreign engine maps then resets",
			service:     NewWith(New().Engine()),
			fields:      []string{"Email"},
			expect:      EmployeeView{Email: "ann@corp"},
		},
	}

	for _, testCase := range testCases {
		actual, err := Partial[EmployeeView](testCase.service, src, testCase.fields...)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestIgnoring(t *testing.T) {
	src := Employee{Id: 1, Name: "ann", Email: "ann@corp"}

	var testCases = []struct {
		description string
		service     *Service
		fields      []string
		expect      EmployeeView
	}{
		{
			description: "named members skipped",
			service:     New(),
			fields:      []string{"Email"},
			expect:      EmployeeView{Id: 1, Name: "ann"},
		},
		{
			description: "empty set maps everything",
			service:     New(),
			fields:      nil,
			expect:      EmployeeView{Id: 1, Name: "ann", Email: "ann@corp"},
		},
		{
			description: "foreign engine maps then resets",
			service:     NewWith(New().Engine()),
			fields:      []string{"Id", "Name"},
			expect:      EmployeeView{Email: "ann@corp"},
		},
	}

	for _, testCase := range testCases {
		actual, err := Ignoring[EmployeeView](testCase.service, src, testCase.fields...)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestPartialPointerDest(t *testing.T) {
	src := Employee{Id: 1, Name: "ann", Email: "ann@corp"}

	var testCases = []struct {
		description string
		service     *Service
		fields      []string
		expect      *EmployeeView
	}{
		{
			description: "pointer destination restricted",
			service:     New(),
			fields:      []string{"Name"},
			expect:      &EmployeeView{Name: "ann"},
		},
		{
			description: "foreign engine resets through the pointer",
			service:     NewWith(New().Engine()),
			fields:      []string{"Name"},
			expect:      &EmployeeView{Name: "ann"},
		},
	}

	for _, testCase := range testCases {
		actual, err := Partial[*EmployeeView](testCase.service, src, testCase.fields...)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestIgnoringPointerDest(t *testing.T) {
	src := Employee{Id: 1, Name: "ann", Email: "ann@corp"}
	service := NewWith(New().Engine())
	actual, err := Ignoring[*EmployeeView](service, src, "Id", "Email")
	assert.Nil(t, err)
	assert.EqualValues(t, &EmployeeView{Name: "ann"}, actual)
}

func TestPartialNonStruct(t *testing.T) {
	srv := New()
	_, err := Partial[int](srv, 1, "Id")
	assert.NotNil(t, err)
}
