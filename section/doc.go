// Package section defines the low-level binary structures and constants of the
// EntryLogger document format.
//
// This package provides the foundational types that define the physical layout
// of a document file. It handles binary serialization/deserialization of the
// document header and field descriptor records, ensuring a consistent
// byte-level representation across platforms.
//
// # Overview
//
// The section package defines two on-disk record types:
//
//  1. Header: fixed-size document preamble (magic, derived lengths, counts)
//  2. FieldDescriptor: fixed-size schema column record (type, width, name)
//
// All multi-byte integers are little-endian, regardless of the host.
//
// # Document Structure
//
// An EntryLogger document consists of fixed-size sections only:
//
//	┌─────────────────────────────────────────────┐
//	│ Header (16 bytes, fixed)                    │
//	│  - Magic "ELD" + version (4 bytes)          │
//	│  - HeaderLen, RowLen (2+2 bytes, derived)   │
//	│  - DescSize, DescCount (1+1 bytes)          │
//	│  - RowCount (4 bytes)                       │
//	│  - Marker "--" (2 bytes)                    │
//	├─────────────────────────────────────────────┤
//	│ Field Descriptors (DescCount × 24 bytes)    │
//	│  - TypeTag, SizeBytes, NameLen, Name        │
//	├─────────────────────────────────────────────┤
//	│ Rows (RowCount × RowLen bytes, fixed)       │
//	│  - One cell per descriptor, schema order    │
//	└─────────────────────────────────────────────┘
//
// Row data starts at byte offset HeaderLen, and row i lives at
// HeaderLen + i*RowLen. The fixed strides are what make O(1) positional row
// addressing possible.
package section
