package lister

import (
	"context"
	"path"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// Object describes one storage object seen by the directory backend.
type Object struct {
	Name  string
	URL   string
	IsDir bool
}

// Storage abstracts directory-like storage so roots on local or remote
// file systems can be listed the same way.
type Storage interface {
	// Stat returns the object at URL, or nil when it does not exist.
	Stat(ctx context.Context, URL string) (*Object, error)
	// List returns the immediate children of the directory at URL.
	List(ctx context.Context, URL string) ([]Object, error)
	// Download returns the content of the object at URL.
	Download(ctx context.Context, URL string) ([]byte, error)
}

// afsStorage is a Storage implemented using github.com/viant/afs
type afsStorage struct {
	svc afs.Service
}

// NewAFS constructs a Storage backed by the default AFS service.
func NewAFS() Storage {
	return &afsStorage{svc: afs.New()}
}

func (a *afsStorage) Stat(ctx context.Context, URL string) (*Object, error) {
	ok, err := a.svc.Exists(ctx, URL)
	if err != nil || !ok {
		return nil, err
	}
	object, err := a.svc.Object(ctx, URL)
	if err != nil {
		return nil, err
	}
	return newObject(object), nil
}

func (a *afsStorage) List(ctx context.Context, URL string) ([]Object, error) {
	objects, err := a.svc.List(ctx, URL)
	if err != nil {
		return nil, err
	}
	result := make([]Object, 0, len(objects))
	for _, object := range objects {
		// afs reports the listed directory itself as well
		if object.IsDir() && sameLocation(object.URL(), URL) {
			continue
		}
		result = append(result, *newObject(object))
	}
	return result, nil
}

func (a *afsStorage) Download(ctx context.Context, URL string) ([]byte, error) {
	return a.svc.DownloadWithURL(ctx, URL)
}

// sameLocation compares locations ignoring repeated and trailing separators.
func sameLocation(URL1, URL2 string) bool {
	if url.Equals(URL1, URL2) {
		return true
	}
	return path.Clean(url.Path(URL1)) == path.Clean(url.Path(URL2))
}

func newObject(object storage.Object) *Object {
	return &Object{Name: object.Name(), URL: object.URL(), IsDir: object.IsDir()}
}
