package mdcrypt

import (
	"errors"
	"fmt"
)

// FileFailure records one file that could not be transformed.
type FileFailure struct {
	File *FileNode
	Err  error
}

// Summary aggregates the outcome of one batch. It is scoped to a single
// RunBatch call and discarded after the summary notification.
type Summary struct {
	OK       int
	Fail     int
	Failures []FileFailure
}

// CryptService is the orchestration layer that drives a whole
// encrypt-folder or decrypt-folder batch: scan, resolve one password,
// transform each file, and report a single summary.
type CryptService struct {
	scanner  *Scanner
	resolver *Resolver
	engine   *Engine
	notifier Notifier
	logger   Logger
}

// NewCryptService creates a CryptService with the provided components.
func NewCryptService(scanner *Scanner, resolver *Resolver, engine *Engine, notifier Notifier, logger Logger) *CryptService {
	return &CryptService{
		scanner:  scanner,
		resolver: resolver,
		engine:   engine,
		notifier: notifier,
		logger:   logger,
	}
}

// RunBatch encrypts or decrypts every eligible file under dir with one
// password. One file's failure never stops the loop; only user
// cancellation of the password prompt aborts the batch, and that
// happens before any file is touched.
//
// Exactly one notification is delivered per invocation: either the
// "nothing to do" message or the final ok/fail summary. Cancellation
// aborts silently.
func (s *CryptService) RunBatch(dir *DirectoryNode, intent Intent) (*Summary, error) {
	files, err := s.eligibleFiles(dir, intent)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		s.notifier.Notify(fmt.Sprintf("No %s files to %s in this folder.", intent.FileKind(), intent))
		return &Summary{}, nil
	}

	pwh, err := s.resolver.Resolve(dir, intent)
	if err != nil {
		if errors.Is(err, ErrPromptCancelled) {
			s.logger.Info("batch cancelled at password prompt", "dir", dir.Path)
			return nil, err
		}
		return nil, fmt.Errorf("resolving password: %w", err)
	}

	summary := &Summary{}
	for _, f := range files {
		if _, terr := s.engine.TransformOne(f, pwh, intent); terr != nil {
			summary.Fail++
			summary.Failures = append(summary.Failures, FileFailure{File: f, Err: terr})
			s.logger.Error("file transform failed", "path", f.Path, "error", terr)
			continue
		}
		summary.OK++
	}

	s.notifier.Notify(fmt.Sprintf("Folder %s: %d ok, %d failed", intent.PastVerb(), summary.OK, summary.Fail))
	s.logger.Info("batch complete", "dir", dir.Path, "intent", intent.String(), "ok", summary.OK, "fail", summary.Fail)
	return summary, nil
}

// eligibleFiles selects the file set for the batch direction.
func (s *CryptService) eligibleFiles(dir *DirectoryNode, intent Intent) ([]*FileNode, error) {
	if intent == Encrypting {
		return s.scanner.MarkdownFilesUnder(dir)
	}
	return s.scanner.EncryptedFilesUnder(dir)
}
