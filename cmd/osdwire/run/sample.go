package run

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/anirudhraja/osdwire/api"
)

var samples = map[string]func() api.Binding{
	"volume": sampleVolume,
	"pool":   samplePool,
}

func newSampleCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:       "sample volume|pool",
		Short:     "Print an encoded sample message",
		Long:      `sample builds a Volume or StoragePool with fresh identifiers and prints it.`,
		Args:      cobra.ExactValidArgs(1),
		ValidArgs: []string{"volume", "pool"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.custom {
				return errors.New("sample needs the built-in schema; drop --proto")
			}
			build, ok := samples[args[0]]
			if !ok {
				return fmt.Errorf("unknown sample %q", args[0])
			}
			msg := build().Dynamic()
			data, err := a.codec.Encode(msg)
			if err != nil {
				return err
			}
			switch output {
			case formatJSON, formatYAML:
				obj, err := a.codec.Parse(data, msg.Descriptor().FullName)
				if err != nil {
					return err
				}
				return writeObjects(cmd.OutOrStdout(), output, []map[string]interface{}{obj})
			}
			return writePayload(cmd.OutOrStdout(), output, data)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", formatHex, "output: hex, base64, raw, json or yaml")
	return cmd
}

func sampleVolume() api.Binding {
	id := uuid.NewString()

	locator := api.NewVolumeLocator()
	locator.SetName("pvc-" + id[:8])
	locator.SetVolumeLabels(map[string]string{"namespace": "default"})

	spec := api.NewVolumeSpec()
	spec.SetSize(10 << 30)
	spec.SetFormat(api.FSType_FS_TYPE_EXT4)
	spec.SetHaLevel(2)
	spec.SetCos(api.CosType_MEDIUM)

	replicas := api.NewReplicaSet()
	replicas.SetNodes([]string{uuid.NewString(), uuid.NewString()})

	vol := api.NewVolume()
	vol.SetId(id)
	vol.SetLocator(locator)
	vol.SetSpec(spec)
	vol.SetCtime(timestamppb.Now())
	vol.SetFormat(api.FSType_FS_TYPE_EXT4)
	vol.SetStatus(api.VolumeStatus_VOLUME_STATUS_UP)
	vol.SetState(api.VolumeState_VOLUME_STATE_ATTACHED)
	vol.SetReplicaSets([]*api.ReplicaSet{replicas})
	return vol
}

func samplePool() api.Binding {
	pool := api.NewStoragePool()
	pool.SetCos(api.CosType_HIGH)
	pool.SetMedium(api.StorageMedium_STORAGE_MEDIUM_SSD)
	pool.SetRaidLevel("raid0")
	pool.SetTotalSize(1 << 40)
	pool.SetUsed(1 << 30)
	pool.PutLabel("uuid", uuid.NewString())
	pool.PutLabel("medium", "ssd")
	return pool
}
