package api

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/anirudhraja/osdwire/message"
)

// StoragePool groups storage devices of the same class of service.
type StoragePool struct{ m *message.Message }

func NewStoragePool() *StoragePool { return &StoragePool{m: mustNew("StoragePool")} }

func (x *StoragePool) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *StoragePool) GetID() int32 {
	if x == nil {
		return 0
	}
	return x.m.GetInt32("ID")
}

func (x *StoragePool) SetID(v int32) { set(x.m, "ID", v) }

func (x *StoragePool) GetCos() CosType {
	if x == nil {
		return CosType_NONE
	}
	return CosType(x.m.GetEnum("Cos"))
}

func (x *StoragePool) SetCos(v CosType) { set(x.m, "Cos", v) }

func (x *StoragePool) GetMedium() StorageMedium {
	if x == nil {
		return StorageMedium_STORAGE_MEDIUM_MAGNETIC
	}
	return StorageMedium(x.m.GetEnum("Medium"))
}

func (x *StoragePool) SetMedium(v StorageMedium) { set(x.m, "Medium", v) }

func (x *StoragePool) GetRaidLevel() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("RaidLevel")
}

func (x *StoragePool) SetRaidLevel(v string) { set(x.m, "RaidLevel", v) }

func (x *StoragePool) GetTotalSize() uint64 {
	if x == nil {
		return 0
	}
	return x.m.GetUint64("TotalSize")
}

func (x *StoragePool) SetTotalSize(v uint64) { set(x.m, "TotalSize", v) }

func (x *StoragePool) GetUsed() uint64 {
	if x == nil {
		return 0
	}
	return x.m.GetUint64("Used")
}

func (x *StoragePool) SetUsed(v uint64) { set(x.m, "Used", v) }

// GetLabels returns a copy of the pool labels.
func (x *StoragePool) GetLabels() map[string]string {
	if x == nil {
		return nil
	}
	return x.m.GetStringMap("labels")
}

func (x *StoragePool) SetLabels(v map[string]string) { setStringMap(x.m, "labels", v) }

// PutLabel adds or replaces a single label.
func (x *StoragePool) PutLabel(key, value string) {
	x.m.Map("labels", true)[key] = value
}

func wrapStoragePool(m *message.Message) *StoragePool {
	if m == nil {
		return nil
	}
	return &StoragePool{m: m}
}

// StorageResource describes one storage device.
type StorageResource struct{ m *message.Message }

func NewStorageResource() *StorageResource {
	return &StorageResource{m: mustNew("StorageResource")}
}

func (x *StorageResource) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *StorageResource) GetId() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("id")
}

func (x *StorageResource) SetId(v string) { set(x.m, "id", v) }

func (x *StorageResource) GetPath() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("path")
}

func (x *StorageResource) SetPath(v string) { set(x.m, "path", v) }

func (x *StorageResource) GetIops() int64 {
	if x == nil {
		return 0
	}
	return x.m.GetInt64("iops")
}

func (x *StorageResource) SetIops(v int64) { set(x.m, "iops", v) }

func (x *StorageResource) GetSize() uint64 {
	if x == nil {
		return 0
	}
	return x.m.GetUint64("size")
}

func (x *StorageResource) SetSize(v uint64) { set(x.m, "size", v) }

func (x *StorageResource) GetUsed() uint64 {
	if x == nil {
		return 0
	}
	return x.m.GetUint64("used")
}

func (x *StorageResource) SetUsed(v uint64) { set(x.m, "used", v) }

func (x *StorageResource) GetRotationSpeed() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("rotation_speed")
}

func (x *StorageResource) SetRotationSpeed(v string) { set(x.m, "rotation_speed", v) }

func (x *StorageResource) GetLastScan() *timestamppb.Timestamp {
	if x == nil {
		return nil
	}
	return getTimestamp(x.m, "last_scan")
}

func (x *StorageResource) SetLastScan(v *timestamppb.Timestamp) { setTimestamp(x.m, "last_scan", v) }

func (x *StorageResource) GetMetadata() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("metadata")
}

func (x *StorageResource) SetMetadata(v bool) { set(x.m, "metadata", v) }

func (x *StorageResource) GetMedium() StorageMedium {
	if x == nil {
		return StorageMedium_STORAGE_MEDIUM_MAGNETIC
	}
	return StorageMedium(x.m.GetEnum("medium"))
}

func (x *StorageResource) SetMedium(v StorageMedium) { set(x.m, "medium", v) }

func (x *StorageResource) GetOnline() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("online")
}

func (x *StorageResource) SetOnline(v bool) { set(x.m, "online", v) }

// StorageNode describes the state of a node.
type StorageNode struct{ m *message.Message }

func NewStorageNode() *StorageNode { return &StorageNode{m: mustNew("StorageNode")} }

func (x *StorageNode) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *StorageNode) GetId() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("id")
}

func (x *StorageNode) SetId(v string) { set(x.m, "id", v) }

func (x *StorageNode) GetCpu() float64 {
	if x == nil {
		return 0
	}
	return x.m.GetFloat64("cpu")
}

func (x *StorageNode) SetCpu(v float64) { set(x.m, "cpu", v) }

func (x *StorageNode) GetMemTotal() uint64 {
	if x == nil {
		return 0
	}
	return x.m.GetUint64("mem_total")
}

func (x *StorageNode) SetMemTotal(v uint64) { set(x.m, "mem_total", v) }

func (x *StorageNode) GetMemUsed() uint64 {
	if x == nil {
		return 0
	}
	return x.m.GetUint64("mem_used")
}

func (x *StorageNode) SetMemUsed(v uint64) { set(x.m, "mem_used", v) }

func (x *StorageNode) GetStatus() Status {
	if x == nil {
		return Status_STATUS_NONE
	}
	return Status(x.m.GetEnum("status"))
}

func (x *StorageNode) SetStatus(v Status) { set(x.m, "status", v) }

// GetDisks returns the node's devices keyed by device path.
func (x *StorageNode) GetDisks() map[string]*StorageResource {
	if x == nil {
		return nil
	}
	mv := x.m.Map("disks", false)
	if len(mv) == 0 {
		return nil
	}
	out := make(map[string]*StorageResource, len(mv))
	for k, v := range mv {
		if m, ok := v.(*message.Message); ok {
			out[k.(string)] = &StorageResource{m: m}
		}
	}
	return out
}

// PutDisk adds or replaces the device stored under key.
func (x *StorageNode) PutDisk(key string, v *StorageResource) {
	if v == nil {
		v = NewStorageResource()
	}
	x.m.Map("disks", true)[key] = v.Dynamic()
}

func (x *StorageNode) GetPools() []*StoragePool {
	if x == nil {
		return nil
	}
	return wrapList(x.m.GetMessages("pools"), wrapStoragePool)
}

func (x *StorageNode) SetPools(v []*StoragePool) { setList(x.m, "pools", v) }

func (x *StorageNode) GetMgmtIp() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("mgmt_ip")
}

func (x *StorageNode) SetMgmtIp(v string) { set(x.m, "mgmt_ip", v) }

func (x *StorageNode) GetDataIp() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("data_ip")
}

func (x *StorageNode) SetDataIp(v string) { set(x.m, "data_ip", v) }

func (x *StorageNode) GetHostname() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("hostname")
}

func (x *StorageNode) SetHostname(v string) { set(x.m, "hostname", v) }

func (x *StorageNode) GetNodeLabels() map[string]string {
	if x == nil {
		return nil
	}
	return x.m.GetStringMap("node_labels")
}

func (x *StorageNode) SetNodeLabels(v map[string]string) { setStringMap(x.m, "node_labels", v) }

func (x *StorageNode) GetHwType() HardwareType {
	if x == nil {
		return HardwareType_UnknownMachine
	}
	return HardwareType(x.m.GetEnum("hw_type"))
}

func (x *StorageNode) SetHwType(v HardwareType) { set(x.m, "hw_type", v) }

// StorageCluster is the identity and state of a cluster.
type StorageCluster struct{ m *message.Message }

func NewStorageCluster() *StorageCluster { return &StorageCluster{m: mustNew("StorageCluster")} }

func (x *StorageCluster) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *StorageCluster) GetStatus() Status {
	if x == nil {
		return Status_STATUS_NONE
	}
	return Status(x.m.GetEnum("status"))
}

func (x *StorageCluster) SetStatus(v Status) { set(x.m, "status", v) }

func (x *StorageCluster) GetId() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("id")
}

func (x *StorageCluster) SetId(v string) { set(x.m, "id", v) }

func (x *StorageCluster) GetName() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("name")
}

func (x *StorageCluster) SetName(v string) { set(x.m, "name", v) }
