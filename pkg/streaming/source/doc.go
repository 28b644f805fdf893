/*
Package source defines the minimal contract through which seqflow consumes
external input: a Source produces the next value or reports end-of-input.

Both the lazy stream engine (pkg/streaming/lazy) and the pipeline runtime
(pkg/scheduling/pipeline) are driven through this interface, so any external
collaborator - an in-memory slice, a generator function, a channel, a file of
words, a Redis list - plugs into either model the same way.

Creating sources:

	// From a slice
	src := source.FromSlice([]int{1, 2, 3})

	// From a generator function (unbounded until it returns false)
	n := 0
	src := source.FromFunc(func() (int, bool) {
		n++
		return n, true
	})

	// From a channel
	src := source.FromChannel(ch)

	// Words of a string or reader
	src := source.WordsOf("spending pending lending")
	src := source.Words(file)

	// From a Redis list
	src, err := source.RedisList(client, "jobs:incoming")

Sources are single-pass cursors. To traverse the same input repeatedly, feed
the source into a lazy stream (lazy.FromSource), which memoizes every value
it pulls.
*/
package source
