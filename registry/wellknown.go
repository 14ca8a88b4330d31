package registry

import (
	"github.com/anirudhraja/osdwire/schema"
)

var wrapperValueTypes = map[schema.WrapperType]schema.PrimitiveType{
	schema.WrapperDoubleValue: schema.TypeDouble,
	schema.WrapperFloatValue:  schema.TypeFloat,
	schema.WrapperInt64Value:  schema.TypeInt64,
	schema.WrapperUInt64Value: schema.TypeUint64,
	schema.WrapperInt32Value:  schema.TypeInt32,
	schema.WrapperUInt32Value: schema.TypeUint32,
	schema.WrapperBoolValue:   schema.TypeBool,
	schema.WrapperStringValue: schema.TypeString,
	schema.WrapperBytesValue:  schema.TypeBytes,
}

func scalarField(name string, number int32, t schema.PrimitiveType) *schema.Field {
	return &schema.Field{
		Name:     name,
		Number:   number,
		Label:    schema.LabelOptional,
		Type:     schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: t},
		JsonName: jsonName(name),
	}
}

// registerWellKnownTypes adds the google.protobuf messages that imports of
// google/protobuf/*.proto resolve to.
func (r *Registry) registerWellKnownTypes() {
	add := func(name string, fields ...*schema.Field) *schema.Message {
		msg := &schema.Message{
			Name:     name,
			FullName: "google.protobuf." + name,
			Syntax:   "proto3",
			Fields:   fields,
		}
		msg.BuildIndex()
		r.messages[msg.FullName] = msg
		r.names[msg.FullName] = struct{}{}
		return msg
	}

	add("Timestamp",
		scalarField("seconds", 1, schema.TypeInt64),
		scalarField("nanos", 2, schema.TypeInt32))
	add("Duration",
		scalarField("seconds", 1, schema.TypeInt64),
		scalarField("nanos", 2, schema.TypeInt32))
	add("Empty")
	add("Any",
		scalarField("type_url", 1, schema.TypeString),
		scalarField("value", 2, schema.TypeBytes))

	paths := scalarField("paths", 1, schema.TypeString)
	paths.Label = schema.LabelRepeated
	add("FieldMask", paths)

	for wrapper, valueType := range wrapperValueTypes {
		name := string(wrapper)[len("google.protobuf."):]
		msg := add(name, scalarField("value", 1, valueType))
		msg.IsWrapper = true
	}
}
