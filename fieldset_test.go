package structmap

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/xunsafe"
)

func TestFieldSet(t *testing.T) {
	var testCases = []struct {
		description string
		set         func() (*FieldSet, error)
		permitted   []string
		denied      []string
		expectError bool
	}{
		{
			description: "inclusion set",
			set: func() (*FieldSet, error) {
				return NewFieldSet(reflect.TypeOf(EmployeeView{}), "Id")
			},
			permitted: []string{"Id"},
			denied:    []string{"Name", "Email", "Unknown"},
		},
		{
			description: "exclusion set",
			set: func() (*FieldSet, error) {
				return NewExclusionSet(reflect.TypeOf(EmployeeView{}), "Email")
			},
			permitted: []string{"Id", "Name", "Unknown"},
			denied:    []string{"Email"},
		},
		{
			description: "pointer type accepted",
			set: func() (*FieldSet, error) {
				return NewFieldSet(reflect.TypeOf(&EmployeeView{}), "Id")
			},
			permitted: []string{"Id"},
		},
		{
			description: "non struct rejected",
			set: func() (*FieldSet, error) {
				return NewFieldSet(reflect.TypeOf(0), "Id")
			},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		set, err := testCase.set()
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		for _, name := range testCase.permitted {
			assert.True(t, set.Permits(name), testCase.description+" "+name)
		}
		for _, name := range testCase.denied {
			assert.False(t, set.Permits(name), testCase.description+" "+name)
		}
	}
}

func TestFieldSetZeroExcluded(t *testing.T) {
	set, err := NewFieldSet(reflect.TypeOf(EmployeeView{}), "Name")
	assert.Nil(t, err)
	view := EmployeeView{Id: 1, Name: "ann", Email: "ann@corp"}
	set.ZeroExcluded(xunsafe.AsPointer(&view))
	assert.EqualValues(t, EmployeeView{Name: "ann"}, view)
}
