package classifier

import (
	"context"
	"encoding/json"
	"io"
	"os"

	miniopkg "retain-api/pkg/minio"

	"github.com/friendsofgo/errors"
)

// LoadArtifactFromStore fetches and decodes the model artifact from object
// storage.
func LoadArtifactFromStore(ctx context.Context, store miniopkg.ObjectStore, bucket, object string) (Artifact, error) {
	reader, err := store.Download(ctx, bucket, object)
	if err != nil {
		return Artifact{}, errors.Wrap(err, "download model artifact")
	}
	defer reader.Close()

	return decodeArtifact(reader)
}

// LoadArtifactFromFile decodes the model artifact from a local path. Used
// as the fallback when no object store is configured.
func LoadArtifactFromFile(path string) (Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Artifact{}, errors.Wrapf(ErrArtifactNotFound, "%s", path)
		}
		return Artifact{}, errors.Wrap(err, "open model artifact")
	}
	defer f.Close()

	return decodeArtifact(f)
}

func decodeArtifact(r io.Reader) (Artifact, error) {
	var artifact Artifact
	if err := json.NewDecoder(r).Decode(&artifact); err != nil {
		return Artifact{}, errors.Wrap(ErrArtifactInvalid, err.Error())
	}
	return artifact, nil
}
