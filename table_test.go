package structmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/tagly/format/text"
)

func TestTabulate(t *testing.T) {
	srv := New()
	src := []Employee{{Id: 1, Name: "ann", Email: "ann@corp"}, {Id: 2, Name: "bob", Email: "bob@corp"}}

	t.Run("columns follow member order", func(t *testing.T) {
		table, err := Tabulate[Employee, EmployeeView](srv, src)
		assert.Nil(t, err)
		assert.EqualValues(t, []Column{{Name: "Id"}, {Name: "Name"}, {Name: "Email"}}, table.Columns)
		assert.EqualValues(t, 2, len(table.Rows))
		assert.EqualValues(t, []interface{}{1, "ann", "ann@corp"}, table.Rows[0])
		assert.EqualValues(t, []interface{}{2, "bob", "bob@corp"}, table.Rows[1])
	})

	t.Run("case formatted columns", func(t *testing.T) {
		table, err := Tabulate[Employee, EmployeeView](srv, src, WithColumnCaseFormat(text.CaseFormatLowerUnderscore))
		assert.Nil(t, err)
		assert.EqualValues(t, []Column{{Name: "id"}, {Name: "name"}, {Name: "email"}}, table.Columns)
	})

	t.Run("empty source", func(t *testing.T) {
		table, err := Tabulate[Employee, EmployeeView](srv, nil)
		assert.Nil(t, err)
		assert.EqualValues(t, 0, len(table.Rows))
	})

	t.Run("pointer destination", func(t *testing.T) {
		table, err := Tabulate[Employee, *EmployeeView](srv, src)
		assert.Nil(t, err)
		assert.EqualValues(t, []Column{{Name: "Id"}, {Name: "Name"}, {Name: "Email"}}, table.Columns)
		assert.EqualValues(t, 2, len(table.Rows))
		assert.EqualValues(t, []interface{}{1, "ann", "ann@corp"}, table.Rows[0])
	})

	t.Run("non struct destination", func(t *testing.T) {
		_, err := Tabulate[Employee, int](srv, src)
		assert.NotNil(t, err)
	})
}

func TestTableMarshalJSON(t *testing.T) {
	srv := New()
	src := []Person{{Id: 1, Name: "ann"}}
	table, err := Tabulate[Person, Person](srv, src, WithColumnCaseFormat(text.CaseFormatLowerUnderscore))
	assert.Nil(t, err)

	data, err := table.MarshalJSON()
	assert.Nil(t, err)
	assert.EqualValues(t, `[{"id":1,"name":"ann"}]`, string(data))
}
