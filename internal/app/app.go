package app

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"mdcrypt/internal/cache"
	"mdcrypt/internal/config"
	"mdcrypt/internal/crypto"
	"mdcrypt/internal/mdcrypt"
	"mdcrypt/internal/prompt"
	"mdcrypt/internal/storage"
	"mdcrypt/internal/views"
)

// CryptApp is the application layer between the CLI and CryptService.
// It constructs all dependencies from config, exposes high-level
// operations that accept raw folder paths, and manages the log file
// lifecycle on Close.
type CryptApp struct {
	cfg       *config.Config
	storage   mdcrypt.Storage
	cache     mdcrypt.PasswordCache
	scanner   *mdcrypt.Scanner
	service   *mdcrypt.CryptService
	vaultRoot string
	logFile   *os.File
}

// NewCryptApp creates a fully wired CryptApp from the given config.
// The caller must call Close when done.
func NewCryptApp(cfg *config.Config) (*CryptApp, error) {
	st, err := storage.NewStorageFromConfig(cfg.Storage, cfg.VaultRoot)
	if err != nil {
		return nil, fmt.Errorf("creating storage: %w", err)
	}

	cipher, err := crypto.NewCipherFromConfig(cfg.Cipher)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	pwCache, err := cache.NewCacheFromConfig(cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("creating password cache: %w", err)
	}

	opID := uuid.New().String()
	slogger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger := &slogAdapter{l: slogger}

	policy := extensionPolicy(cfg.Extensions)
	codec := crypto.NewJSONCodec()
	scanner := mdcrypt.NewScanner(st, policy)
	resolver := mdcrypt.NewResolver(pwCache, prompt.NewTerminalPrompter(), logger)
	coordinator := mdcrypt.NewCoordinator(views.NewNopRegistry(), logger)
	engine := mdcrypt.NewEngine(st, cipher, codec, policy, coordinator, pwCache, logger)
	service := mdcrypt.NewCryptService(scanner, resolver, engine, stdoutNotifier{}, logger)

	var vaultRoot string
	if fs, ok := st.(*storage.FileSystemStorage); ok {
		vaultRoot = fs.Root()
	}

	return &CryptApp{
		cfg:       cfg,
		storage:   st,
		cache:     pwCache,
		scanner:   scanner,
		service:   service,
		vaultRoot: vaultRoot,
		logFile:   logFile,
	}, nil
}

// EncryptFolder encrypts every markdown file under the given folder.
func (a *CryptApp) EncryptFolder(rawPath string) (*mdcrypt.Summary, error) {
	dir, err := a.directoryNode(rawPath)
	if err != nil {
		return nil, err
	}
	return a.service.RunBatch(dir, mdcrypt.Encrypting)
}

// DecryptFolder decrypts every encrypted file under the given folder.
func (a *CryptApp) DecryptFolder(rawPath string) (*mdcrypt.Summary, error) {
	dir, err := a.directoryNode(rawPath)
	if err != nil {
		return nil, err
	}
	return a.service.RunBatch(dir, mdcrypt.Decrypting)
}

// FolderStatus reports how many plaintext and encrypted files lie under
// the given folder.
func (a *CryptApp) FolderStatus(rawPath string) (markdown, encrypted int, err error) {
	dir, err := a.directoryNode(rawPath)
	if err != nil {
		return 0, 0, err
	}

	md, err := a.scanner.MarkdownFilesUnder(dir)
	if err != nil {
		return 0, 0, err
	}
	enc, err := a.scanner.EncryptedFilesUnder(dir)
	if err != nil {
		return 0, 0, err
	}
	return len(md), len(enc), nil
}

// Close releases the log file.
func (a *CryptApp) Close() error {
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}

// directoryNode normalizes a raw CLI path to a vault-relative
// DirectoryNode. Absolute paths must lie inside the vault root.
func (a *CryptApp) directoryNode(rawPath string) (*mdcrypt.DirectoryNode, error) {
	raw := rawPath
	if filepath.IsAbs(raw) {
		if a.vaultRoot == "" {
			return nil, fmt.Errorf("absolute paths require filesystem storage: %s", raw)
		}
		rel, err := filepath.Rel(a.vaultRoot, raw)
		if err != nil {
			return nil, fmt.Errorf("relativizing %s: %w", raw, err)
		}
		raw = filepath.ToSlash(rel)
	}

	p := path.Clean(filepath.ToSlash(raw))
	if p == "." || p == "/" {
		return &mdcrypt.DirectoryNode{Path: ""}, nil
	}
	if p == ".." || strings.HasPrefix(p, "../") {
		return nil, fmt.Errorf("folder is outside the vault: %s", rawPath)
	}
	return &mdcrypt.DirectoryNode{Path: strings.Trim(p, "/")}, nil
}

// extensionPolicy builds the policy from config, falling back to the
// standard defaults for unset fields.
func extensionPolicy(cfg config.ExtensionsConfig) *mdcrypt.ExtensionPolicy {
	policy := mdcrypt.DefaultExtensionPolicy()
	if cfg.Plaintext != "" {
		policy.Plaintext = cfg.Plaintext
	}
	if len(cfg.Encrypted) > 0 {
		policy.Encrypted = cfg.Encrypted
	}
	if cfg.DefaultEncrypted != "" {
		policy.DefaultEncrypted = cfg.DefaultEncrypted
	}
	return policy
}

// stdoutNotifier prints the batch summary to stdout.
type stdoutNotifier struct{}

func (stdoutNotifier) Notify(message string) {
	fmt.Println(message)
}
