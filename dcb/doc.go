// Package dcb implements a dynamic character buffer: a growable, contiguous
// sequence of narrow or wide code units that owns its storage.
//
// # Overview
//
// Buffer[E] keeps its content in a single allocation of Cap()+1 elements. The
// extra slot always holds a zero terminator, so CStr can hand the storage to
// consumers that expect a terminated sequence without copying.
//
// The type separates three concerns:
//
//   - Storage: allocation, geometric growth, exact reservation and release
//     through a pluggable alloc.Allocator
//   - Mutators: PushBack, PopBack, Append, Insert, Replace, Erase, Resize, Clear
//   - Accessors: At, Index, Find, Compare, StartsWith, EndsWith, View, String
//
// # Element Types
//
// Any integer type whose underlying type is uint8, uint16, int32 or uint32
// can be stored. Narrow buffers hold bytes, 16-bit buffers hold UTF-16 code
// units, 32-bit buffers hold runes. The buffer never interprets its content;
// encoding only matters for String, the literal constructors and stream I/O.
//
// # Usage Example
//
//	s := dcb.FromString("Hello, World!", nil)
//	sub, err := dcb.Sub(s, 7, 5)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(sub) // World
//
//	s.PushBack('!')
//	if s.Find(sub, 0) != dcb.NotFound {
//	    ...
//	}
//
// # Ownership
//
// A buffer never shares storage with another buffer. Clone and Assign make
// deep copies; Move and MoveFrom transfer the allocation and leave the source
// empty. Slices returned by View and CStr borrow the live storage and are
// invalidated by the next mutating call.
//
// # Errors
//
// Position errors wrap ErrOutOfRange and a missing source buffer wraps
// ErrInvalidArgument; in both cases the buffer is left unmodified. Search
// misses are reported with the NotFound value, not an error. Allocation
// failure is not recoverable at this layer: the allocator's error (wrapping
// alloc.ErrOutOfMemory) is raised with panic before any field changes.
//
// # Thread Safety
//
// Buffers are not safe for concurrent use.
package dcb
