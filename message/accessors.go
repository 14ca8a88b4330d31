package message

// Typed readers. Each returns the zero value when the field is unset, unknown
// or of a different type.

func (m *Message) GetString(name string) string {
	v, _ := m.Get(name).(string)
	return v
}

func (m *Message) GetBool(name string) bool {
	v, _ := m.Get(name).(bool)
	return v
}

func (m *Message) GetInt32(name string) int32 {
	v, _ := m.Get(name).(int32)
	return v
}

func (m *Message) GetInt64(name string) int64 {
	v, _ := m.Get(name).(int64)
	return v
}

func (m *Message) GetUint32(name string) uint32 {
	v, _ := m.Get(name).(uint32)
	return v
}

func (m *Message) GetUint64(name string) uint64 {
	v, _ := m.Get(name).(uint64)
	return v
}

func (m *Message) GetFloat32(name string) float32 {
	v, _ := m.Get(name).(float32)
	return v
}

func (m *Message) GetFloat64(name string) float64 {
	v, _ := m.Get(name).(float64)
	return v
}

func (m *Message) GetBytes(name string) []byte {
	v, _ := m.Get(name).([]byte)
	return v
}

// GetEnum returns the number stored in an enum field.
func (m *Message) GetEnum(name string) int32 {
	v, _ := m.Get(name).(int32)
	return v
}

// GetMessage returns the nested message, or nil when absent.
func (m *Message) GetMessage(name string) *Message {
	v, _ := m.Get(name).(*Message)
	return v
}

// GetStrings returns a repeated string field as a fresh slice.
func (m *Message) GetStrings(name string) []string {
	l := m.List(name)
	if len(l) == 0 {
		return nil
	}
	out := make([]string, 0, len(l))
	for _, e := range l {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// GetMessages returns a repeated message field as a fresh slice.
func (m *Message) GetMessages(name string) []*Message {
	l := m.List(name)
	if len(l) == 0 {
		return nil
	}
	out := make([]*Message, 0, len(l))
	for _, e := range l {
		if nm, ok := e.(*Message); ok {
			out = append(out, nm)
		}
	}
	return out
}

// GetStringMap returns a map<string, string> field as a fresh Go map.
func (m *Message) GetStringMap(name string) map[string]string {
	mv := m.Map(name, false)
	if len(mv) == 0 {
		return nil
	}
	out := make(map[string]string, len(mv))
	for k, v := range mv {
		ks, _ := k.(string)
		vs, _ := v.(string)
		out[ks] = vs
	}
	return out
}
