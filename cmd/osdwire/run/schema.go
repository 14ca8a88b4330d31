package run

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/anirudhraja/osdwire/api"
	"github.com/anirudhraja/osdwire/schema"
)

func newSchemaCmd(a *app) *cobra.Command {
	var enums, services bool

	cmd := &cobra.Command{
		Use:   "schema [NAME]",
		Short: "List or describe schema definitions",
		Long: `schema without arguments lists the loaded message types, or enums and
services with --enums and --services. With NAME it describes that
message, enum or service.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 1 {
				return a.describe(w, args[0])
			}
			var names []string
			switch {
			case enums:
				names = a.codec.ListEnums()
			case services:
				names = a.codec.ListServices()
			case a.custom:
				names = a.codec.ListMessages()
			default:
				names = api.MessageNames()
			}
			for _, name := range names {
				fmt.Fprintln(w, name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&enums, "enums", false, "list enums")
	cmd.Flags().BoolVar(&services, "services", false, "list services")
	return cmd
}

func (a *app) describe(w io.Writer, name string) error {
	reg := a.codec.GetRegistry()
	fullName := a.messageType(name)

	if msg, err := reg.GetMessage(fullName); err == nil {
		describeMessage(w, msg)
		return nil
	}
	if enum, err := reg.GetEnum(fullName); err == nil {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "enum %s\n", enum.FullName)
		for _, v := range enum.Values {
			fmt.Fprintf(tw, "  %d\t%s\n", v.Number, v.Name)
		}
		return tw.Flush()
	}
	if svc, err := reg.GetService(fullName); err == nil {
		fmt.Fprintf(w, "service %s\n", fullName)
		for _, m := range svc.Methods {
			fmt.Fprintf(w, "  rpc %s(%s%s) returns (%s%s)\n", m.Name,
				stream(m.ClientStreaming), m.InputType,
				stream(m.ServerStreaming), m.OutputType)
		}
		return nil
	}
	return fmt.Errorf("no message, enum or service named %s", fullName)
}

func describeMessage(w io.Writer, msg *schema.Message) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "message %s\n", msg.FullName)
	for _, f := range msg.Fields {
		var notes []string
		if f.InOneof() {
			notes = append(notes, "oneof "+f.Oneof)
		}
		if f.Proto3Optional {
			notes = append(notes, "optional")
		}
		if f.IsPacked() {
			notes = append(notes, "packed")
		}
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\n", f.Number, f.Name, fieldLabel(f), strings.Join(notes, ", "))
	}
	_ = tw.Flush()
}

func fieldLabel(f *schema.Field) string {
	name := fieldTypeName(&f.Type)
	if f.IsList() {
		return "repeated " + name
	}
	return name
}

func fieldTypeName(t *schema.FieldType) string {
	switch t.Kind {
	case schema.KindMap:
		return fmt.Sprintf("map<%s, %s>", fieldTypeName(t.MapKey), fieldTypeName(t.MapValue))
	case schema.KindMessage:
		return t.MessageType
	case schema.KindEnum:
		return t.EnumType
	}
	return string(t.PrimitiveType)
}

func stream(s bool) string {
	if s {
		return "stream "
	}
	return ""
}
