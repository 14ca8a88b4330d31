package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/anirudhraja/osdwire/wire"
)

func TestRegistry_LoadsEmbeddedSchema(t *testing.T) {
	reg := Registry()
	assert.Same(t, reg, Registry())

	for _, name := range []string{"VolumeSpec", "Volume", "StoragePool", "SdkCredentialCreateRequest", "SdkCloudMigrateStartRequest.MigrateVolume"} {
		desc, err := Descriptor(name)
		require.NoError(t, err, name)
		assert.Equal(t, Package+"."+name, desc.FullName)
	}

	_, err := New("NoSuchMessage")
	assert.Error(t, err)

	svc, err := reg.GetService(Package + ".OpenStorageVolume")
	require.NoError(t, err)
	assert.NotEmpty(t, svc.Methods)

	version, err := reg.GetEnum(Package + ".SdkVersion.Version")
	require.NoError(t, err)
	assert.True(t, version.AllowAlias)
}

func TestVolumeSpec_Scenario(t *testing.T) {
	spec := NewVolumeSpec()
	spec.SetSize(107374182400)
	spec.SetFormat(FSType_FS_TYPE_EXT4)
	spec.SetEncrypted(true)
	spec.SetPassphrase("secret")

	data, err := Marshal(spec)
	require.NoError(t, err)

	var want []byte
	want = protowire.AppendTag(want, 2, protowire.VarintType)
	want = protowire.AppendVarint(want, 107374182400)
	want = protowire.AppendTag(want, 3, protowire.VarintType)
	want = protowire.AppendVarint(want, 2)
	want = protowire.AppendTag(want, 14, protowire.VarintType)
	want = protowire.AppendVarint(want, 1)
	want = protowire.AppendTag(want, 15, protowire.BytesType)
	want = protowire.AppendString(want, "secret")
	assert.Equal(t, want, data)

	decoded := NewVolumeSpec()
	require.NoError(t, Unmarshal(data, decoded))
	assert.Equal(t, uint64(107374182400), decoded.GetSize())
	assert.Equal(t, FSType_FS_TYPE_EXT4, decoded.GetFormat())
	assert.Equal(t, "FS_TYPE_EXT4", decoded.GetFormat().String())
	assert.True(t, decoded.GetEncrypted())
	assert.Equal(t, "secret", decoded.GetPassphrase())
	assert.False(t, decoded.HasReplicaSet())
	assert.Nil(t, decoded.GetReplicaSet())
	assert.Nil(t, decoded.GetReplicaSet().GetNodes())
}

func TestStoragePool_LabelsRoundTrip(t *testing.T) {
	first := NewStoragePool()
	first.SetID(1)
	first.SetMedium(StorageMedium_STORAGE_MEDIUM_SSD)
	first.PutLabel("env", "prod")
	first.PutLabel("az", "us-east-1a")

	second := NewStoragePool()
	second.SetID(1)
	second.SetMedium(StorageMedium_STORAGE_MEDIUM_SSD)
	second.PutLabel("az", "us-east-1a")
	second.PutLabel("env", "prod")

	a, err := Marshal(first)
	require.NoError(t, err)
	b, err := Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	decoded := NewStoragePool()
	require.NoError(t, Unmarshal(a, decoded))
	assert.Equal(t, map[string]string{"env": "prod", "az": "us-east-1a"}, decoded.GetLabels())
	assert.Equal(t, int32(1), decoded.GetID())
}

func TestVolumeSpecUpdate_ExplicitPresence(t *testing.T) {
	update := NewVolumeSpecUpdate()
	update.SetScale(5)
	update.SetShared(false)

	data, err := Marshal(update)
	require.NoError(t, err)

	decoded := NewVolumeSpecUpdate()
	require.NoError(t, Unmarshal(data, decoded))
	assert.True(t, decoded.HasScale())
	assert.Equal(t, uint32(5), decoded.GetScale())
	assert.True(t, decoded.HasShared(), "an option set to false is still present")
	assert.False(t, decoded.GetShared())
	assert.False(t, decoded.HasEphemeral())
	assert.False(t, decoded.HasSize())

	decoded.ClearScale()
	assert.False(t, decoded.HasScale())
}

func TestVolume_NestedAndTimestamps(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 500, time.UTC)

	rs := NewReplicaSet()
	rs.SetNodes([]string{"node-1", "node-2"})

	spec := NewVolumeSpec()
	spec.SetHaLevel(2)
	spec.SetReplicaSet(rs)

	locator := NewVolumeLocator()
	locator.SetName("db-data")
	locator.SetVolumeLabels(map[string]string{"app": "db"})

	vol := NewVolume()
	vol.SetId("vol-1")
	vol.SetLocator(locator)
	vol.SetSpec(spec)
	vol.SetCtime(timestamppb.New(created))
	vol.SetState(VolumeState_VOLUME_STATE_ATTACHED)
	vol.SetAttachPath([]string{"/mnt/a", "/mnt/b"})
	vol.SetReplicaSets([]*ReplicaSet{rs})

	data, err := Marshal(vol)
	require.NoError(t, err)

	decoded := NewVolume()
	require.NoError(t, Unmarshal(data, decoded))
	assert.Equal(t, "vol-1", decoded.GetId())
	assert.Equal(t, "db-data", decoded.GetLocator().GetName())
	assert.Equal(t, map[string]string{"app": "db"}, decoded.GetLocator().GetVolumeLabels())
	assert.Equal(t, int64(2), decoded.GetSpec().GetHaLevel())
	assert.Equal(t, []string{"node-1", "node-2"}, decoded.GetSpec().GetReplicaSet().GetNodes())
	assert.True(t, decoded.GetCtime().AsTime().Equal(created))
	assert.Nil(t, decoded.GetLastScan())
	assert.Equal(t, VolumeState_VOLUME_STATE_ATTACHED, decoded.GetState())
	assert.Equal(t, []string{"/mnt/a", "/mnt/b"}, decoded.GetAttachPath())
	require.Len(t, decoded.GetReplicaSets(), 1)
	assert.Nil(t, decoded.GetSource())

	vol.SetSpec(nil)
	assert.Nil(t, vol.GetSpec())
}

func TestStorageNode_Disks(t *testing.T) {
	disk := NewStorageResource()
	disk.SetId("sda")
	disk.SetSize(1 << 40)
	disk.SetMedium(StorageMedium_STORAGE_MEDIUM_NVME)
	disk.SetOnline(true)

	pool := NewStoragePool()
	pool.SetCos(CosType_HIGH)

	node := NewStorageNode()
	node.SetId("node-1")
	node.SetCpu(12.5)
	node.SetStatus(Status_STATUS_OK)
	node.PutDisk("/dev/sda", disk)
	node.SetPools([]*StoragePool{pool})
	node.SetHwType(HardwareType_BareMetalMachine)

	data, err := Marshal(node)
	require.NoError(t, err)

	decoded := NewStorageNode()
	require.NoError(t, Unmarshal(data, decoded))
	assert.Equal(t, 12.5, decoded.GetCpu())
	assert.Equal(t, "STATUS_OK", decoded.GetStatus().String())
	disks := decoded.GetDisks()
	require.Contains(t, disks, "/dev/sda")
	assert.Equal(t, uint64(1<<40), disks["/dev/sda"].GetSize())
	assert.True(t, disks["/dev/sda"].GetOnline())
	require.Len(t, decoded.GetPools(), 1)
	assert.Equal(t, CosType_HIGH, decoded.GetPools()[0].GetCos())
	assert.Equal(t, HardwareType_BareMetalMachine, decoded.GetHwType())
}

func TestSdkCredentialCreateRequest_Oneof(t *testing.T) {
	aws := NewSdkAwsCredentialRequest()
	aws.SetAccessKey("AKIA")
	aws.SetSecretKey("s3cr3t")
	aws.SetRegion("us-east-1")

	req := NewSdkCredentialCreateRequest()
	req.SetName("backup")
	assert.Equal(t, CredentialTypeNotSet, req.GetCredentialTypeCase())

	req.SetAwsCredential(aws)
	assert.Equal(t, CredentialTypeAws, req.GetCredentialTypeCase())

	azure := NewSdkAzureCredentialRequest()
	azure.SetAccountName("acct")
	req.SetAzureCredential(azure)
	assert.Equal(t, CredentialTypeAzure, req.GetCredentialTypeCase())
	assert.Nil(t, req.GetAwsCredential(), "setting azure replaces aws")

	data, err := Marshal(req)
	require.NoError(t, err)

	decoded := NewSdkCredentialCreateRequest()
	require.NoError(t, Unmarshal(data, decoded))
	assert.Equal(t, "backup", decoded.GetName())
	assert.Equal(t, CredentialTypeAzure, decoded.GetCredentialTypeCase())
	assert.Equal(t, "acct", decoded.GetAzureCredential().GetAccountName())

	decoded.ClearCredentialType()
	assert.Equal(t, CredentialTypeNotSet, decoded.GetCredentialTypeCase())
}

func TestSdkSchedulePolicy_Intervals(t *testing.T) {
	weekly := NewSdkSchedulePolicyIntervalWeekly()
	weekly.SetDay(SdkTimeWeekday_SdkTimeWeekdayFriday)
	weekly.SetHour(23)

	periodic := NewSdkSchedulePolicyIntervalPeriodic()
	periodic.SetSeconds(3600)

	first := NewSdkSchedulePolicyInterval()
	first.SetRetain(4)
	first.SetWeekly(weekly)

	second := NewSdkSchedulePolicyInterval()
	second.SetPeriodic(periodic)

	policy := NewSdkSchedulePolicy()
	policy.SetName("nightly")
	policy.SetSchedules([]*SdkSchedulePolicyInterval{first, second})

	data, err := Marshal(policy)
	require.NoError(t, err)

	decoded := NewSdkSchedulePolicy()
	require.NoError(t, Unmarshal(data, decoded))
	schedules := decoded.GetSchedules()
	require.Len(t, schedules, 2)
	assert.Equal(t, PeriodTypeWeekly, schedules[0].GetPeriodTypeCase())
	assert.Equal(t, SdkTimeWeekday_SdkTimeWeekdayFriday, schedules[0].GetWeekly().GetDay())
	assert.Equal(t, int32(23), schedules[0].GetWeekly().GetHour())
	assert.Nil(t, schedules[0].GetDaily())
	assert.Equal(t, PeriodTypePeriodic, schedules[1].GetPeriodTypeCase())
	assert.Equal(t, int64(3600), schedules[1].GetPeriodic().GetSeconds())
}

func TestAlerts(t *testing.T) {
	at := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	alerts := NewAlerts()
	for i, sev := range []SeverityType{SeverityType_SEVERITY_TYPE_ALARM, SeverityType_SEVERITY_TYPE_NOTIFY} {
		a := NewAlert()
		a.SetId(int64(i + 1))
		a.SetSeverity(sev)
		a.SetResource(ResourceType_RESOURCE_TYPE_VOLUME)
		a.SetResourceId("vol-1")
		a.SetTimestamp(timestamppb.New(at))
		alerts.Add(a)
	}

	data, err := Marshal(alerts)
	require.NoError(t, err)

	decoded := NewAlerts()
	require.NoError(t, Unmarshal(data, decoded))
	list := decoded.GetAlert()
	require.Len(t, list, 2)
	assert.Equal(t, SeverityType_SEVERITY_TYPE_NOTIFY, list[1].GetSeverity())
	assert.Equal(t, "RESOURCE_TYPE_VOLUME", list[0].GetResource().String())
	assert.True(t, list[0].GetTimestamp().AsTime().Equal(at))
}

func TestBindings_NilSafe(t *testing.T) {
	var spec *VolumeSpec
	assert.Zero(t, spec.GetSize())
	assert.Nil(t, spec.Dynamic())
	assert.Equal(t, FSType_FS_TYPE_NONE, spec.GetFormat())

	var vol *Volume
	assert.Nil(t, vol.GetSpec())
	assert.Nil(t, vol.GetCtime())

	assert.ErrorIs(t, Unmarshal([]byte{0x08, 0x01}, spec), ErrNilBinding)

	data, err := Marshal(spec)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestUnmarshal_FailureLeavesBindingUntouched(t *testing.T) {
	spec := NewVolumeSpec()
	spec.SetSize(10)

	// passphrase with a length running past the end of the buffer
	err := Unmarshal([]byte{0x7a, 0x05, 's'}, spec)
	require.Error(t, err)
	assert.ErrorIs(t, err, wire.ErrTruncated)
	assert.Equal(t, uint64(10), spec.GetSize())
}

func TestEnumString_Undeclared(t *testing.T) {
	assert.Equal(t, "42", FSType(42).String())
	assert.Equal(t, "HIGH", CosType_HIGH.String())
}
