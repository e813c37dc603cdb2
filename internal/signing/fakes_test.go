package signing

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/domain"
)

// In-memory stand-ins for the postgres repo and the blob store. Error fields
// let a test fail one pipeline step and watch the short-circuit.

type fakeKeys struct {
	pairs   map[domain.KeyID]domain.KeyPair
	failGet error
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{pairs: make(map[domain.KeyID]domain.KeyPair)}
}

func (f *fakeKeys) CreateKeyPair(_ context.Context, kp domain.KeyPair) (domain.KeyPair, error) {
	kp.ID = uuid.New()
	kp.CreatedAt = time.Now()
	f.pairs[kp.ID] = kp
	return kp, nil
}

func (f *fakeKeys) KeyPairByID(_ context.Context, id domain.KeyID) (domain.KeyPair, error) {
	if f.failGet != nil {
		return domain.KeyPair{}, f.failGet
	}
	kp, ok := f.pairs[id]
	if !ok {
		return domain.KeyPair{}, domain.ErrKeyNotFound
	}
	return kp, nil
}

func (f *fakeKeys) KeyPairsByOwner(_ context.Context, owner domain.UserID) ([]domain.KeyPair, error) {
	var out []domain.KeyPair
	for _, kp := range f.pairs {
		if kp.OwnerID == owner {
			kp.PrivateKey = nil
			out = append(out, kp)
		}
	}
	return out, nil
}

type fakeDocs struct {
	docs       map[domain.DocID]domain.SignedDocument
	failCreate error
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{docs: make(map[domain.DocID]domain.SignedDocument)}
}

func (f *fakeDocs) CreateDocument(_ context.Context, doc domain.SignedDocument) (domain.SignedDocument, error) {
	if f.failCreate != nil {
		return domain.SignedDocument{}, f.failCreate
	}
	doc.ID = uuid.New()
	doc.SignedAt = time.Now()
	f.docs[doc.ID] = doc
	return doc, nil
}

func (f *fakeDocs) DocumentByID(_ context.Context, id domain.DocID) (domain.SignedDocument, error) {
	doc, ok := f.docs[id]
	if !ok {
		return domain.SignedDocument{}, domain.ErrDocNotFound
	}
	return doc, nil
}

type fakeBlobs struct {
	objects     map[string][]byte
	puts        int
	failPut     error
	failFetch   error
	failPresign error
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{objects: make(map[string][]byte)}
}

func (f *fakeBlobs) Put(_ context.Context, r io.Reader, origName, _ string) (domain.BlobPutResult, error) {
	if f.failPut != nil {
		return domain.BlobPutResult{}, f.failPut
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return domain.BlobPutResult{}, err
	}
	f.puts++
	key := fmt.Sprintf("files/%d/%s", f.puts, origName)
	f.objects[key] = b
	return domain.BlobPutResult{StorageKey: key, Size: int64(len(b))}, nil
}

func (f *fakeBlobs) Fetch(_ context.Context, storageKey string) ([]byte, error) {
	if f.failFetch != nil {
		return nil, f.failFetch
	}
	b, ok := f.objects[storageKey]
	if !ok {
		return nil, fmt.Errorf("no object at %s", storageKey)
	}
	return b, nil
}

func (f *fakeBlobs) PresignGet(_ context.Context, storageKey, _ string, ttl time.Duration) (string, error) {
	if f.failPresign != nil {
		return "", f.failPresign
	}
	return fmt.Sprintf("https://blobs.test/%s?expires=%d", storageKey, int(ttl.Seconds())), nil
}

func (f *fakeBlobs) Delete(_ context.Context, storageKey string) error {
	delete(f.objects, storageKey)
	return nil
}

func (f *fakeBlobs) Ping(context.Context) error { return nil }

func discardLog() *log.Logger { return log.New(io.Discard, "", 0) }

func encodeB64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

func testIdentity() domain.Identity {
	return domain.Identity{UID: uuid.New(), Email: "signer@example.com"}
}
