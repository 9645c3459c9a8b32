package jffs2

import "errors"

// Error kind sentinels. Each belongs to one of the kinds the scanner and
// materializer distinguish: STRUCTURAL recovers by advancing one byte,
// CORRUPTION and DECOMPRESS are logged and the node or a placeholder is
// retained, IO is caught per dirent, USAGE aborts the run, and ENCODING
// drops one dirent. None of these propagate past the boundary named in
// their doc comment.
var (
	// ErrShortBuffer indicates fewer bytes remain than a header needs.
	// STRUCTURAL: the scanner advances one byte and retries.
	ErrShortBuffer = errors.New("short buffer")

	// ErrHeaderCRC indicates a candidate node's header CRC did not match.
	// STRUCTURAL: the scanner advances one byte and retries.
	ErrHeaderCRC = errors.New("header crc mismatch")

	// ErrNodeCRC indicates a node's body CRC did not match its declared
	// value. CORRUPTION: logged, the node is retained.
	ErrNodeCRC = errors.New("node crc mismatch")

	// ErrNameCRC indicates a dirent's name CRC did not match. CORRUPTION:
	// logged, the dirent is retained.
	ErrNameCRC = errors.New("name crc mismatch")

	// ErrSizeMismatch indicates a decompressed payload did not match the
	// node's declared dsize. CORRUPTION: logged, the node is retained.
	ErrSizeMismatch = errors.New("decompressed size mismatch")

	// ErrDecompress indicates a node's payload could not be decompressed.
	// DECOMPRESS: logged; materialization substitutes a zero-filled
	// placeholder of the expected length.
	ErrDecompress = errors.New("decompress failed")

	// ErrMaterializeIO indicates a host filesystem operation failed while
	// writing one dirent. IO: caught and logged per dirent.
	ErrMaterializeIO = errors.New("materialize io error")

	// ErrDestinationExists indicates the destination directory exists and
	// --force was not given. USAGE: fatal, nonzero exit.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrInputUnreadable indicates the input image could not be opened or
	// read. USAGE: fatal, nonzero exit.
	ErrInputUnreadable = errors.New("input unreadable")

	// ErrNonUTF8Name indicates a resolved path component is not valid
	// UTF-8. ENCODING: logged, the dirent is skipped.
	ErrNonUTF8Name = errors.New("non-utf8 name")

	// ErrPathDepth indicates a dirent's parent chain exceeded the maximum
	// resolution depth, most likely a cycle in forged pino values.
	// ENCODING: logged, the dirent is skipped.
	ErrPathDepth = errors.New("path resolution depth exceeded")
)
