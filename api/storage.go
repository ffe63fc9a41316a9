package api

import (
	"context"

	"go.uber.org/zap"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/utils"
)

// saveStorage writes a snapshot of every repository. It is the only way to
// persist changes while the server runs.
func saveStorage(ctx context.Context) (map[string]string, error) {

	written, err := GetServicer(ctx).Save()
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("storage saved", zap.Any("files", written))

	return written, nil
}

func listSnapshots(ctx context.Context) (map[string][]string, error) {
	return GetServicer(ctx).Snapshots()
}
