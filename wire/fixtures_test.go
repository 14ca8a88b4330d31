package wire

import (
	"github.com/anirudhraja/osdwire/schema"
)

func primitive(t schema.PrimitiveType) schema.FieldType {
	return schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: t}
}

func mapOf(k, v schema.PrimitiveType) schema.FieldType {
	return schema.FieldType{
		Kind:     schema.KindMap,
		MapKey:   &schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: k},
		MapValue: &schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: v},
	}
}

// fixture holds a small schema shaped like the storage API messages.
type fixture struct {
	fsType     *schema.Enum
	replicaSet *schema.Message
	spec       *schema.Message
	update     *schema.Message
	pool       *schema.Message
	scalars    *schema.Message
	node       *schema.Message
}

func newFixture() *fixture {
	fx := &fixture{}

	fx.fsType = &schema.Enum{
		Name:     "FSType",
		FullName: "test.FSType",
		Values: []*schema.EnumValue{
			{Name: "FS_TYPE_NONE", Number: 0},
			{Name: "FS_TYPE_BTRFS", Number: 1},
			{Name: "FS_TYPE_EXT4", Number: 2},
		},
	}
	enumType := schema.FieldType{Kind: schema.KindEnum, EnumType: "test.FSType", Enum: fx.fsType}

	fx.replicaSet = &schema.Message{
		Name:     "ReplicaSet",
		FullName: "test.ReplicaSet",
		Fields: []*schema.Field{
			{Name: "nodes", Number: 1, Label: schema.LabelRepeated, Type: primitive(schema.TypeString)},
		},
	}
	replicaSetType := schema.FieldType{Kind: schema.KindMessage, MessageType: "test.ReplicaSet", Message: fx.replicaSet}

	fx.spec = &schema.Message{
		Name:     "VolumeSpec",
		FullName: "test.VolumeSpec",
		Fields: []*schema.Field{
			{Name: "ephemeral", Number: 1, Label: schema.LabelOptional, Type: primitive(schema.TypeBool)},
			{Name: "size", Number: 2, Label: schema.LabelOptional, Type: primitive(schema.TypeUint64)},
			{Name: "format", Number: 3, Label: schema.LabelOptional, Type: enumType},
			{Name: "ha_level", Number: 5, Label: schema.LabelOptional, Type: primitive(schema.TypeInt64)},
			{Name: "volume_labels", Number: 10, Label: schema.LabelOptional, Type: mapOf(schema.TypeString, schema.TypeString)},
			{Name: "replica_set", Number: 12, Label: schema.LabelOptional, Type: replicaSetType},
			{Name: "encrypted", Number: 14, Label: schema.LabelOptional, Type: primitive(schema.TypeBool)},
			{Name: "passphrase", Number: 15, Label: schema.LabelOptional, Type: primitive(schema.TypeString)},
		},
	}

	ephemeral := &schema.Field{Name: "ephemeral", Number: 1, Label: schema.LabelOptional, Type: primitive(schema.TypeBool)}
	scale := &schema.Field{Name: "scale", Number: 17, Label: schema.LabelOptional, Type: primitive(schema.TypeUint32)}
	replicaSet := &schema.Field{Name: "replica_set", Number: 12, Label: schema.LabelOptional, Type: replicaSetType}
	fx.update = &schema.Message{
		Name:     "VolumeSpecUpdate",
		FullName: "test.VolumeSpecUpdate",
		Fields: []*schema.Field{
			{Name: "passphrase", Number: 15, Label: schema.LabelOptional, Type: primitive(schema.TypeString)},
		},
		OneofGroups: []*schema.Oneof{
			{Name: "ephemeral_opt", Fields: []*schema.Field{ephemeral}},
			{Name: "replica_set_opt", Fields: []*schema.Field{replicaSet}},
			{Name: "scale_opt", Fields: []*schema.Field{scale}},
		},
	}

	fx.pool = &schema.Message{
		Name:     "StoragePool",
		FullName: "test.StoragePool",
		Fields: []*schema.Field{
			{Name: "ID", Number: 1, Label: schema.LabelOptional, Type: primitive(schema.TypeInt64)},
			{Name: "TotalSize", Number: 7, Label: schema.LabelOptional, Type: primitive(schema.TypeUint64)},
			{Name: "labels", Number: 9, Label: schema.LabelOptional, Type: mapOf(schema.TypeString, schema.TypeString)},
		},
	}

	fx.scalars = &schema.Message{
		Name:     "Scalars",
		FullName: "test.Scalars",
		Fields: []*schema.Field{
			{Name: "f_int32", Number: 1, Type: primitive(schema.TypeInt32)},
			{Name: "f_int64", Number: 2, Type: primitive(schema.TypeInt64)},
			{Name: "f_uint32", Number: 3, Type: primitive(schema.TypeUint32)},
			{Name: "f_uint64", Number: 4, Type: primitive(schema.TypeUint64)},
			{Name: "f_sint32", Number: 5, Type: primitive(schema.TypeSint32)},
			{Name: "f_sint64", Number: 6, Type: primitive(schema.TypeSint64)},
			{Name: "f_fixed32", Number: 7, Type: primitive(schema.TypeFixed32)},
			{Name: "f_fixed64", Number: 8, Type: primitive(schema.TypeFixed64)},
			{Name: "f_sfixed32", Number: 9, Type: primitive(schema.TypeSfixed32)},
			{Name: "f_sfixed64", Number: 10, Type: primitive(schema.TypeSfixed64)},
			{Name: "f_float", Number: 11, Type: primitive(schema.TypeFloat)},
			{Name: "f_double", Number: 12, Type: primitive(schema.TypeDouble)},
			{Name: "f_bool", Number: 13, Type: primitive(schema.TypeBool)},
			{Name: "f_string", Number: 14, Type: primitive(schema.TypeString)},
			{Name: "f_bytes", Number: 15, Type: primitive(schema.TypeBytes)},
			{Name: "f_enum", Number: 16, Type: enumType},
			{Name: "r_int32", Number: 20, Label: schema.LabelRepeated, Type: primitive(schema.TypeInt32)},
			{Name: "r_enum", Number: 21, Label: schema.LabelRepeated, Type: enumType},
			{Name: "r_double", Number: 22, Label: schema.LabelRepeated, Type: primitive(schema.TypeDouble)},
			{Name: "r_string", Number: 23, Label: schema.LabelRepeated, Type: primitive(schema.TypeString)},
			{Name: "m_int64", Number: 24, Type: mapOf(schema.TypeInt64, schema.TypeString)},
			{Name: "m_bool", Number: 25, Type: mapOf(schema.TypeBool, schema.TypeUint32)},
		},
	}

	resource := &schema.Message{
		Name:     "StorageResource",
		FullName: "test.StorageResource",
		Fields: []*schema.Field{
			{Name: "id", Number: 1, Type: primitive(schema.TypeString)},
			{Name: "size", Number: 3, Type: primitive(schema.TypeUint64)},
		},
	}
	fx.node = &schema.Message{
		Name:     "StorageNode",
		FullName: "test.StorageNode",
		Fields: []*schema.Field{
			{Name: "id", Number: 1, Type: primitive(schema.TypeString)},
			{Name: "cpu", Number: 2, Type: primitive(schema.TypeDouble)},
			{Name: "disks", Number: 3, Type: schema.FieldType{
				Kind:     schema.KindMap,
				MapKey:   &schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeString},
				MapValue: &schema.FieldType{Kind: schema.KindMessage, MessageType: "test.StorageResource", Message: resource},
			}},
		},
	}

	return fx
}
