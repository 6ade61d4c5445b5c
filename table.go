package structmap

import (
	"fmt"
	"reflect"

	"github.com/francoispqt/gojay"
	"github.com/viant/structmap/visitor"
	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

type (
	// Column describes a single tabular column.
	Column struct {
		Name string
	}

	// Table holds mapped elements flattened into rows; row order follows the
	// source, value order follows the destination member order.
	Table struct {
		Columns []Column
		Rows    [][]interface{}
	}

	tableOptions struct {
		caseFormat text.CaseFormat
	}

	// TableOption customizes tabulation.
	TableOption func(o *tableOptions)
)

// WithColumnCaseFormat re-cases column names into the supplied format.
func WithColumnCaseFormat(caseFormat text.CaseFormat) TableOption {
	return func(o *tableOptions) {
		o.caseFormat = caseFormat
	}
}

// Tabulate maps every element of src and flattens the results into rows.
func Tabulate[S, D any](s *Service, src []S, opts ...TableOption) (*Table, error) {
	options := &tableOptions{}
	for _, opt := range opts {
		opt(options)
	}
	var prototype D
	structType := ensureStruct(reflect.TypeOf(prototype))
	if structType == nil {
		return nil, fmt.Errorf("expected struct destination, got %T", prototype)
	}
	mapped, err := Slice[S, D](s, src)
	if err != nil {
		return nil, err
	}
	table := &Table{Columns: columnsOf(structType, options.caseFormat), Rows: make([][]interface{}, 0, len(mapped))}
	for i := range mapped {
		visit, err := visitor.StructVisitorOf(&mapped[i])
		if err != nil {
			return nil, err
		}
		row := make([]interface{}, 0, len(table.Columns))
		if err = visit(func(key string, element interface{}) (bool, error) {
			row = append(row, element)
			return true, nil
		}); err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func columnsOf(structType reflect.Type, caseFormat text.CaseFormat) []Column {
	xStruct := xunsafe.NewStruct(structType)
	result := make([]Column, 0, len(xStruct.Fields))
	for i := range xStruct.Fields {
		field := &xStruct.Fields[i]
		result = append(result, Column{Name: columnName(field.Name, field.Tag, caseFormat)})
	}
	return result
}

func columnName(fieldName string, tag reflect.StructTag, caseFormat text.CaseFormat) string {
	if fTag, _ := format.Parse(tag); fTag != nil && fTag.Name != "" {
		fieldName = fTag.Name
	}
	if caseFormat == "" {
		return fieldName
	}
	src := text.DetectCaseFormat(fieldName)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(fieldName, caseFormat)
}

// MarshalJSONArray encodes rows as objects keyed by column name.
func (t *Table) MarshalJSONArray(enc *gojay.Encoder) {
	for _, values := range t.Rows {
		enc.AddObject(&tableRow{columns: t.Columns, values: values})
	}
}

// IsNil implements gojay.MarshalerJSONArray.
func (t *Table) IsNil() bool {
	return t == nil
}

// MarshalJSON renders the table as a JSON array of row objects.
func (t *Table) MarshalJSON() ([]byte, error) {
	return gojay.MarshalJSONArray(t)
}

type tableRow struct {
	columns []Column
	values  []interface{}
}

func (r *tableRow) MarshalJSONObject(enc *gojay.Encoder) {
	for i, column := range r.columns {
		if i >= len(r.values) {
			break
		}
		enc.AddInterfaceKey(column.Name, r.values[i])
	}
}

func (r *tableRow) IsNil() bool {
	return r == nil
}
