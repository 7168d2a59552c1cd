package utils

import (
	"context"
	"io"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/pkg/errors"
)

// downloadTimeout bounds the whole transfer of a remote image.
const downloadTimeout = 60 * time.Second

// DownloadImage fetches the resource at url into a temporary file and returns it rewound
// to the start. The caller owns the file and should remove it once done.
func DownloadImage(ctx context.Context, url string) (*os.File, error) {
	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid image URI %s", url)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to download image file from URI %s", url)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unable to download image file from URI %s, status %v", url, res.Status)
	}

	tmpfile, err := os.CreateTemp("", "image-*"+path.Ext(req.URL.Path))
	if err != nil {
		return nil, errors.Wrap(err, "unable to create temporary file")
	}

	// Copy the image binary data into the temporary file.
	if _, err = io.Copy(tmpfile, res.Body); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, errors.Wrap(err, "unable to copy the source URI into the destination file")
	}
	if _, err = tmpfile.Seek(0, io.SeekStart); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, errors.Wrap(err, "unable to rewind the temporary file")
	}
	return tmpfile, nil
}
