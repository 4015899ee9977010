package mdcrypt_test

import (
	"errors"
	"testing"

	"mdcrypt/internal/cache"
	"mdcrypt/internal/crypto"
	"mdcrypt/internal/mdcrypt"
	"mdcrypt/internal/storage"
	"mdcrypt/internal/testutil"
	"mdcrypt/internal/views"
)

type engineFixture struct {
	engine   *mdcrypt.Engine
	storage  *testutil.FaultyStorage
	cache    *cache.MemoryCache
	registry *views.MemoryRegistry
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()

	st := testutil.NewFaultyStorage(storage.NewMemoryStorage())
	pwCache := cache.NewMemoryCache(mdcrypt.LevelPerFile)
	registry := views.NewMemoryRegistry(st)
	logger := mdcrypt.NewNopLogger()
	coordinator := mdcrypt.NewCoordinator(registry, logger)

	engine := mdcrypt.NewEngine(
		st,
		crypto.NewTestCipher(),
		crypto.NewJSONCodec(),
		mdcrypt.DefaultExtensionPolicy(),
		coordinator,
		pwCache,
		logger,
	)
	return &engineFixture{engine: engine, storage: st, cache: pwCache, registry: registry}
}

func (f *engineFixture) addFile(t *testing.T, path, content string) {
	t.Helper()
	f.storage.Storage.(*storage.MemoryStorage).AddFile(path, content)
}

var testPwh = mdcrypt.PasswordAndHint{Password: "pw", Hint: "a hint"}

func TestEngine_EncryptThenDecryptRoundTrip(t *testing.T) {
	f := newEngineFixture(t)
	f.addFile(t, "notes/a.md", "# Secret\n\nbody text\n")

	encPath, err := f.engine.TransformOne(&mdcrypt.FileNode{Path: "notes/a.md"}, testPwh, mdcrypt.Encrypting)
	if err != nil {
		t.Fatalf("encrypt TransformOne() error = %v", err)
	}
	if encPath != "notes/a.mdenc" {
		t.Errorf("encrypt newPath = %q, want notes/a.mdenc", encPath)
	}

	// The old path is gone; the new one holds a decodable envelope.
	if _, err := f.storage.Read(&mdcrypt.FileNode{Path: "notes/a.md"}); err == nil {
		t.Error("old path still readable after rename")
	}
	text, err := f.storage.Read(&mdcrypt.FileNode{Path: encPath})
	if err != nil {
		t.Fatalf("reading encrypted file: %v", err)
	}
	env, err := crypto.NewJSONCodec().Decode(text)
	if err != nil {
		t.Fatalf("encrypted file is not a valid envelope: %v", err)
	}
	if env.Hint != "a hint" {
		t.Errorf("envelope hint = %q, want %q", env.Hint, "a hint")
	}

	plainPath, err := f.engine.TransformOne(&mdcrypt.FileNode{Path: encPath}, testPwh, mdcrypt.Decrypting)
	if err != nil {
		t.Fatalf("decrypt TransformOne() error = %v", err)
	}
	if plainPath != "notes/a.md" {
		t.Errorf("decrypt newPath = %q, want notes/a.md", plainPath)
	}

	content, err := f.storage.Read(&mdcrypt.FileNode{Path: plainPath})
	if err != nil {
		t.Fatalf("reading decrypted file: %v", err)
	}
	if content != "# Secret\n\nbody text\n" {
		t.Errorf("round trip content = %q, want original", content)
	}
}

func TestEngine_RemembersPasswordAgainstNewPath(t *testing.T) {
	f := newEngineFixture(t)
	f.addFile(t, "notes/a.md", "content")

	newPath, err := f.engine.TransformOne(&mdcrypt.FileNode{Path: "notes/a.md"}, testPwh, mdcrypt.Encrypting)
	if err != nil {
		t.Fatalf("TransformOne() error = %v", err)
	}

	cached, err := f.cache.Get(newPath)
	if err != nil {
		t.Fatalf("cache Get() error = %v", err)
	}
	if cached.Password != "pw" {
		t.Errorf("cached password for %q = %q, want %q", newPath, cached.Password, "pw")
	}
}

func TestEngine_WrongPasswordIsDecryptFailed(t *testing.T) {
	f := newEngineFixture(t)
	f.addFile(t, "notes/a.md", "secret")

	encPath, err := f.engine.TransformOne(&mdcrypt.FileNode{Path: "notes/a.md"}, testPwh, mdcrypt.Encrypting)
	if err != nil {
		t.Fatalf("encrypt error = %v", err)
	}

	wrong := mdcrypt.PasswordAndHint{Password: "not-the-password"}
	_, err = f.engine.TransformOne(&mdcrypt.FileNode{Path: encPath}, wrong, mdcrypt.Decrypting)
	if !errors.Is(err, mdcrypt.ErrDecryptFailed) {
		t.Fatalf("decrypt with wrong password error = %v, want ErrDecryptFailed", err)
	}

	// The file is untouched: still encrypted, still at its path.
	text, rerr := f.storage.Read(&mdcrypt.FileNode{Path: encPath})
	if rerr != nil {
		t.Fatalf("encrypted file missing after failed decrypt: %v", rerr)
	}
	if _, derr := crypto.NewJSONCodec().Decode(text); derr != nil {
		t.Errorf("encrypted file corrupted by failed decrypt: %v", derr)
	}
}

func TestEngine_EmptyPasswordIsRejected(t *testing.T) {
	f := newEngineFixture(t)
	f.addFile(t, "notes/a.md", "content")

	_, err := f.engine.TransformOne(&mdcrypt.FileNode{Path: "notes/a.md"}, mdcrypt.PasswordAndHint{}, mdcrypt.Encrypting)
	if !errors.Is(err, mdcrypt.ErrNoPassword) {
		t.Fatalf("TransformOne() with empty password error = %v, want ErrNoPassword", err)
	}

	// Nothing was encrypted under the empty password.
	content, rerr := f.storage.Read(&mdcrypt.FileNode{Path: "notes/a.md"})
	if rerr != nil {
		t.Fatalf("original file missing after rejected transform: %v", rerr)
	}
	if content != "content" {
		t.Errorf("original content = %q, want untouched", content)
	}
}

func TestEngine_MalformedEnvelopeIsDecryptFailed(t *testing.T) {
	f := newEngineFixture(t)
	f.addFile(t, "notes/junk.mdenc", "this is not an envelope")

	_, err := f.engine.TransformOne(&mdcrypt.FileNode{Path: "notes/junk.mdenc"}, testPwh, mdcrypt.Decrypting)
	if !errors.Is(err, mdcrypt.ErrDecryptFailed) {
		t.Errorf("decrypt of malformed file error = %v, want ErrDecryptFailed", err)
	}
}

func TestEngine_DetachesOpenViewAndReopensAtNewPath(t *testing.T) {
	f := newEngineFixture(t)
	f.addFile(t, "notes/b.md", "open in editor")
	f.registry.OpenFile("notes/b.md")

	newPath, err := f.engine.TransformOne(&mdcrypt.FileNode{Path: "notes/b.md"}, testPwh, mdcrypt.Encrypting)
	if err != nil {
		t.Fatalf("TransformOne() error = %v", err)
	}

	open := f.registry.OpenViews()
	if len(open) != 1 {
		t.Fatalf("open views after transform = %d, want 1", len(open))
	}
	if open[0].FilePath() != newPath {
		t.Errorf("reopened view path = %q, want %q", open[0].FilePath(), newPath)
	}
}

func TestEngine_NoReopenWhenFileWasNotOpen(t *testing.T) {
	f := newEngineFixture(t)
	f.addFile(t, "notes/a.md", "content")
	f.registry.OpenFile("notes/other.md")

	if _, err := f.engine.TransformOne(&mdcrypt.FileNode{Path: "notes/a.md"}, testPwh, mdcrypt.Encrypting); err != nil {
		t.Fatalf("TransformOne() error = %v", err)
	}

	open := f.registry.OpenViews()
	if len(open) != 1 || open[0].FilePath() != "notes/other.md" {
		t.Errorf("unrelated views disturbed: %v", open)
	}
}

func TestEngine_ReopensEvenWhenWriteFails(t *testing.T) {
	f := newEngineFixture(t)
	f.addFile(t, "notes/b.md", "open in editor")
	f.registry.OpenFile("notes/b.md")
	f.storage.FailModify["notes/b.mdenc"] = true

	_, err := f.engine.TransformOne(&mdcrypt.FileNode{Path: "notes/b.md"}, testPwh, mdcrypt.Encrypting)
	if err == nil {
		t.Fatal("TransformOne() succeeded, want injected write fault")
	}

	// The detached view must not be lost: it is reopened at the new
	// path even though the transform failed after the rename.
	open := f.registry.OpenViews()
	if len(open) != 1 {
		t.Fatalf("open views after failed transform = %d, want 1", len(open))
	}
	if open[0].FilePath() != "notes/b.mdenc" {
		t.Errorf("reopened view path = %q, want notes/b.mdenc", open[0].FilePath())
	}
}

func TestEngine_RenameFailureLeavesContentIntact(t *testing.T) {
	f := newEngineFixture(t)
	f.addFile(t, "notes/a.md", "content")
	f.storage.FailRename["notes/a.md"] = true

	_, err := f.engine.TransformOne(&mdcrypt.FileNode{Path: "notes/a.md"}, testPwh, mdcrypt.Encrypting)
	if err == nil {
		t.Fatal("TransformOne() succeeded, want injected rename fault")
	}

	content, rerr := f.storage.Read(&mdcrypt.FileNode{Path: "notes/a.md"})
	if rerr != nil {
		t.Fatalf("original file missing after failed rename: %v", rerr)
	}
	if content != "content" {
		t.Errorf("original content = %q, want untouched", content)
	}
}

func TestEngine_EncryptedViewDetachedThroughSafeTeardown(t *testing.T) {
	f := newEngineFixture(t)

	env, err := crypto.NewTestCipher().Encrypt("pw", "", []byte("secret"))
	if err != nil {
		t.Fatalf("building envelope: %v", err)
	}
	text, err := crypto.NewJSONCodec().Encode(env)
	if err != nil {
		t.Fatalf("encoding envelope: %v", err)
	}
	f.addFile(t, "notes/open.mdenc", text)
	f.registry.OpenEncrypted("notes/open.mdenc")

	newPath, err := f.engine.TransformOne(&mdcrypt.FileNode{Path: "notes/open.mdenc"}, testPwh, mdcrypt.Decrypting)
	if err != nil {
		t.Fatalf("TransformOne() error = %v", err)
	}

	// The specialized view went through its own teardown and a fresh
	// view exists at the decrypted path.
	open := f.registry.OpenViews()
	if len(open) != 1 {
		t.Fatalf("open views after transform = %d, want 1", len(open))
	}
	if open[0].FilePath() != newPath {
		t.Errorf("reopened view path = %q, want %q", open[0].FilePath(), newPath)
	}
}
