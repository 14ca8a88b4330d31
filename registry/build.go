package registry

import (
	"fmt"
	"strconv"

	protoparserparser "github.com/yoheimuta/go-protoparser/v4/parser"
	"go.uber.org/zap"

	"github.com/anirudhraja/osdwire/schema"
)

// pendingMessage pairs a registered message with the parsed body its
// fields are built from.
type pendingMessage struct {
	msg    *schema.Message
	body   []protoparserparser.Visitee
	syntax string
}

// buildSymbolTable builds definitions for the given files, which must be
// ordered so that imports come first.
func (r *Registry) buildSymbolTable(files []string) error {
	var pending []pendingMessage

	// Pass 1: Register all message and enum names
	for _, file := range files {
		p, err := r.registerNames(file)
		if err != nil {
			return err
		}
		pending = append(pending, p...)
	}

	// Pass 2: Build all message definitions
	for _, p := range pending {
		if err := r.buildDefinitions(p); err != nil {
			return err
		}
	}
	for _, p := range pending {
		p.msg.BuildIndex()
	}

	// Pass 3: Build services
	for _, file := range files {
		if err := r.buildServices(file); err != nil {
			return err
		}
	}
	return nil
}

// registerNames registers all message and enum names declared in file.
func (r *Registry) registerNames(file string) ([]pendingMessage, error) {
	entity := r.protoEntities[file]
	protoFile := &schema.ProtoFile{
		Name:    file,
		Package: entity.pkg,
		Syntax:  entity.syntax,
	}
	for _, imp := range entity.imports {
		protoFile.Imports = append(protoFile.Imports, &schema.Import{Path: imp})
	}
	r.files[file] = protoFile

	var pending []pendingMessage
	for _, body := range r.parsedProtoBody[file].ProtoBody {
		switch b := body.(type) {
		case *protoparserparser.Message:
			msg, p, err := r.registerMessage(entity.pkg, entity.syntax, b)
			if err != nil {
				return nil, err
			}
			protoFile.Messages = append(protoFile.Messages, msg)
			pending = append(pending, p...)
		case *protoparserparser.Enum:
			enum, err := r.registerEnum(entity.pkg, b)
			if err != nil {
				return nil, err
			}
			protoFile.Enums = append(protoFile.Enums, enum)
		}
	}
	return pending, nil
}

// registerMessage registers a message and its nested types under scope.
func (r *Registry) registerMessage(scope, syntax string, def *protoparserparser.Message) (*schema.Message, []pendingMessage, error) {
	fullName := r.getFullName(scope, def.MessageName)
	if _, exists := r.names[fullName]; exists {
		return nil, nil, fmt.Errorf("duplicate definition: %s", fullName)
	}
	msg := &schema.Message{
		Name:     def.MessageName,
		FullName: fullName,
		Syntax:   syntax,
	}
	r.messages[fullName] = msg
	r.names[fullName] = struct{}{}

	pending := []pendingMessage{{msg: msg, body: def.MessageBody, syntax: syntax}}
	for _, body := range def.MessageBody {
		switch b := body.(type) {
		case *protoparserparser.Message:
			nested, p, err := r.registerMessage(fullName, syntax, b)
			if err != nil {
				return nil, nil, err
			}
			msg.NestedTypes = append(msg.NestedTypes, nested)
			pending = append(pending, p...)
		case *protoparserparser.Enum:
			enum, err := r.registerEnum(fullName, b)
			if err != nil {
				return nil, nil, err
			}
			msg.NestedEnums = append(msg.NestedEnums, enum)
		}
	}
	return msg, pending, nil
}

func (r *Registry) registerEnum(scope string, def *protoparserparser.Enum) (*schema.Enum, error) {
	fullName := r.getFullName(scope, def.EnumName)
	if _, exists := r.names[fullName]; exists {
		return nil, fmt.Errorf("duplicate definition: %s", fullName)
	}
	enum := &schema.Enum{Name: def.EnumName, FullName: fullName}
	for _, body := range def.EnumBody {
		switch b := body.(type) {
		case *protoparserparser.EnumField:
			n, err := strconv.ParseInt(b.Number, 0, 32)
			if err != nil {
				return nil, fmt.Errorf("enum %s value %s: invalid number %q", fullName, b.Ident, b.Number)
			}
			enum.Values = append(enum.Values, &schema.EnumValue{
				Name:     b.Ident,
				Number:   int32(n),
				JsonName: b.Ident,
			})
		case *protoparserparser.Option:
			if b.OptionName == "allow_alias" && unquote(b.Constant) == "true" {
				enum.AllowAlias = true
			}
		}
	}
	r.enums[fullName] = enum
	r.names[fullName] = struct{}{}
	return enum, nil
}

// buildDefinitions builds the fields and oneofs of one message, resolving
// every type reference.
func (r *Registry) buildDefinitions(p pendingMessage) error {
	msg := p.msg
	proto2 := p.syntax == "proto2"
	numbers := make(map[int32]string)

	addField := func(f *schema.Field) error {
		if f.Number < 1 || f.Number > 1<<29-1 {
			return fmt.Errorf("%s.%s: field number %d out of range", msg.FullName, f.Name, f.Number)
		}
		if prev, dup := numbers[f.Number]; dup {
			return fmt.Errorf("%s: field number %d used by %s and %s", msg.FullName, f.Number, prev, f.Name)
		}
		numbers[f.Number] = f.Name
		return nil
	}

	for _, body := range p.body {
		switch b := body.(type) {
		case *protoparserparser.Field:
			f, err := r.newField(msg.FullName, b.FieldName, b.Type, b.FieldNumber, fieldOptions(b.FieldOptions))
			if err != nil {
				return err
			}
			switch {
			case b.IsRepeated:
				f.Label = schema.LabelRepeated
				f.Unpacked = unpackedByDefault(proto2, fieldOptions(b.FieldOptions))
			case b.IsRequired:
				f.Label = schema.LabelRequired
				f.Proto2 = true
			default:
				f.Label = schema.LabelOptional
				f.Proto2 = proto2
				f.Proto3Optional = b.IsOptional && !proto2
			}
			if err := addField(f); err != nil {
				return err
			}
			msg.Fields = append(msg.Fields, f)

		case *protoparserparser.MapField:
			f, err := r.newMapField(msg.FullName, b)
			if err != nil {
				return err
			}
			if err := addField(f); err != nil {
				return err
			}
			msg.Fields = append(msg.Fields, f)

		case *protoparserparser.Oneof:
			group := &schema.Oneof{Name: b.OneofName}
			for _, of := range b.OneofFields {
				f, err := r.newField(msg.FullName, of.FieldName, of.Type, of.FieldNumber, fieldOptions(of.FieldOptions))
				if err != nil {
					return err
				}
				f.Label = schema.LabelOptional
				f.Oneof = b.OneofName
				if err := addField(f); err != nil {
					return err
				}
				group.Fields = append(group.Fields, f)
				msg.Fields = append(msg.Fields, f)
			}
			msg.OneofGroups = append(msg.OneofGroups, group)

		case *protoparserparser.Option:
			if b.OptionName == "map_entry" && unquote(b.Constant) == "true" {
				msg.MapEntry = true
			}
		}
	}

	r.logger.Debug("built message",
		zap.String("message", msg.FullName),
		zap.Int("fields", len(msg.Fields)),
		zap.Int("oneofs", len(msg.OneofGroups)))
	return nil
}

func (r *Registry) newField(scope, name, typeName, number string, options map[string]string) (*schema.Field, error) {
	n, err := strconv.ParseInt(number, 0, 32)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: invalid field number %q", scope, name, number)
	}
	fieldType, err := r.convertProtoType(typeName, scope)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", scope, name, err)
	}
	f := &schema.Field{
		Name:         name,
		Number:       int32(n),
		Type:         fieldType,
		JsonName:     jsonName(name),
		DefaultValue: options["default"],
	}
	if jn, ok := options["json_name"]; ok {
		f.JsonName = jn
	}
	return f, nil
}

func (r *Registry) newMapField(scope string, b *protoparserparser.MapField) (*schema.Field, error) {
	keyType, err := r.convertProtoType(b.KeyType, scope)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", scope, b.MapName, err)
	}
	if !schema.IsValidMapKey(&keyType) {
		return nil, fmt.Errorf("%s.%s: invalid map key type %s", scope, b.MapName, b.KeyType)
	}
	f, err := r.newField(scope, b.MapName, b.Type, b.FieldNumber, fieldOptions(b.FieldOptions))
	if err != nil {
		return nil, err
	}
	valueType := f.Type
	f.Label = schema.LabelRepeated
	f.Type = schema.FieldType{
		Kind:     schema.KindMap,
		MapKey:   &keyType,
		MapValue: &valueType,
	}
	return f, nil
}

// convertProtoType resolves a .proto type reference seen inside scope.
func (r *Registry) convertProtoType(typeName, scope string) (schema.FieldType, error) {
	if pt, ok := schema.LookupPrimitive(typeName); ok {
		return schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: pt}, nil
	}

	fullName, err := getReferencedType(typeName, scope, r.names)
	if err != nil {
		return schema.FieldType{}, err
	}
	if msg, ok := r.messages[fullName]; ok {
		return schema.FieldType{Kind: schema.KindMessage, MessageType: fullName, Message: msg}, nil
	}
	return schema.FieldType{Kind: schema.KindEnum, EnumType: fullName, Enum: r.enums[fullName]}, nil
}

// buildServices builds service definitions declared in file.
func (r *Registry) buildServices(file string) error {
	entity := r.protoEntities[file]
	for _, body := range r.parsedProtoBody[file].ProtoBody {
		def, ok := body.(*protoparserparser.Service)
		if !ok {
			continue
		}
		service := &schema.Service{Name: def.ServiceName}
		for _, sb := range def.ServiceBody {
			rpc, ok := sb.(*protoparserparser.RPC)
			if !ok {
				continue
			}
			input, err := getReferencedType(rpc.RPCRequest.MessageType, entity.pkg, r.names)
			if err != nil {
				return fmt.Errorf("service %s method %s input: %w", def.ServiceName, rpc.RPCName, err)
			}
			output, err := getReferencedType(rpc.RPCResponse.MessageType, entity.pkg, r.names)
			if err != nil {
				return fmt.Errorf("service %s method %s output: %w", def.ServiceName, rpc.RPCName, err)
			}
			service.Methods = append(service.Methods, &schema.Method{
				Name:            rpc.RPCName,
				InputType:       input,
				OutputType:      output,
				ClientStreaming: rpc.RPCRequest.IsStream,
				ServerStreaming: rpc.RPCResponse.IsStream,
			})
		}
		r.services[r.getFullName(entity.pkg, def.ServiceName)] = service
		r.files[file].Services = append(r.files[file].Services, service)
	}
	return nil
}

func fieldOptions(options []*protoparserparser.FieldOption) map[string]string {
	if len(options) == 0 {
		return nil
	}
	out := make(map[string]string, len(options))
	for _, o := range options {
		out[o.OptionName] = unquote(o.Constant)
	}
	return out
}

// unpackedByDefault reports whether a repeated scalar is written one tag
// per element: proto2 unless [packed = true], proto3 only with [packed = false].
func unpackedByDefault(proto2 bool, options map[string]string) bool {
	packed, set := options["packed"]
	if !set {
		return proto2
	}
	return packed != "true"
}
