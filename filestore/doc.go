// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package filestore manages the upload directory for study materials.

# Saving Files

Save writes a byte stream under a collision-free variant of the
client's filename:

	stored, size, err := store.Save(file, header.Filename)

The desired name is first sanitized (directory components stripped,
unsafe characters removed), then probed with O_EXCL creates. If
"notes.txt" exists the file lands as "notes_1.txt", then "notes_2.txt",
and so on. Existing uploads are never overwritten; the exclusive create
makes the filesystem the arbiter when two identical uploads race.

# Serving Files

Path resolves a stored name for serving:

	p, err := store.Path("notes_1.txt")
	if err == filestore.ErrNotFound { ... }

Only names already in sanitized form can resolve, which blocks path
traversal without a second validation pass.

# Extension Allow-List

Allowed checks the fixed extension allow-list before anything is
written:

	pdf doc docx png jpg jpeg ppt pptx xls xlsx txt

Files with a missing or disallowed extension are rejected by the
materials handler before Save is called.
*/
package filestore
