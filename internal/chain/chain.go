// Package chain implements the doubly linked chain that backs the public
// list type. Nodes live in a slot arena and refer to their neighbors by
// Handle rather than by pointer, so removing a node recycles its slot for a
// later insertion and a stale reference cannot dangle.
//
// A Chain does no locking and reports no errors; callers own both concerns.
package chain

// A Handle names one node slot in a Chain's arena. It stays valid from the
// insertion that returned it until that node is removed. The zero Handle is
// None.
type Handle int32

// None is the null Handle. It marks both ends of the chain and the absence
// of a node.
const None Handle = 0

type node[T any] struct {
	value T
	prev  Handle
	next  Handle
}

// Chain is an unsynchronized doubly linked list of values backed by a slot
// arena. The zero value is an empty chain ready to use.
type Chain[T any] struct {
	nodes []node[T]
	free  []Handle
	head  Handle
	tail  Handle
	size  int
}

func (c *Chain[T]) Len() int      { return c.size }
func (c *Chain[T]) Front() Handle { return c.head }
func (c *Chain[T]) Back() Handle  { return c.tail }

func (c *Chain[T]) Value(h Handle) T     { return c.slot(h).value }
func (c *Chain[T]) Next(h Handle) Handle { return c.slot(h).next }
func (c *Chain[T]) Prev(h Handle) Handle { return c.slot(h).prev }

// Handles are 1-based so that the zero Chain and None line up.
func (c *Chain[T]) slot(h Handle) *node[T] { return &c.nodes[h-1] }

func (c *Chain[T]) alloc(value T) Handle {
	if n := len(c.free); n > 0 {
		h := c.free[n-1]
		c.free = c.free[:n-1]
		c.slot(h).value = value
		return h
	}
	c.nodes = append(c.nodes, node[T]{value: value})
	return Handle(len(c.nodes))
}

// release zeroes h's slot, so the stored value stops pinning whatever it
// references, and queues the slot for reuse.
func (c *Chain[T]) release(h Handle) {
	*c.slot(h) = node[T]{}
	c.free = append(c.free, h)
}

// PushFront links a new node holding value before the current head and
// returns its handle.
func (c *Chain[T]) PushFront(value T) Handle {
	h := c.alloc(value)
	c.slot(h).next = c.head
	if c.head != None {
		c.slot(c.head).prev = h
	} else {
		c.tail = h
	}
	c.head = h
	c.size++
	return h
}

// PushBack links a new node holding value after the current tail and returns
// its handle.
func (c *Chain[T]) PushBack(value T) Handle {
	h := c.alloc(value)
	c.slot(h).prev = c.tail
	if c.tail != None {
		c.slot(c.tail).next = h
	} else {
		c.head = h
	}
	c.tail = h
	c.size++
	return h
}

// Remove unlinks the node named by h and recycles its slot. h must be live:
// returned by a push and not removed or cleared since.
func (c *Chain[T]) Remove(h Handle) {
	n := c.slot(h)
	if n.prev != None {
		c.slot(n.prev).next = n.next
	} else {
		c.head = n.next
	}
	if n.next != None {
		c.slot(n.next).prev = n.prev
	} else {
		c.tail = n.prev
	}
	c.release(h)
	c.size--
}

// Clear removes every node, front to back, releasing each slot exactly once.
// Arena storage is kept for reuse.
func (c *Chain[T]) Clear() {
	for h := c.head; h != None; {
		next := c.slot(h).next
		c.release(h)
		h = next
	}
	c.head = None
	c.tail = None
	c.size = 0
}
