package launch

const linkFlag = "--link"

// DefaultLinkBackend is the link backend injected when the caller does not
// pick one. Only the traffic-control backend materializes the capacity,
// delay and queue-size attributes carried by the topology file.
const DefaultLinkBackend = "tc"

// EnsureLinkBackend makes sure the forwarded arguments select a link
// backend. If the caller already passed --link, their arguments are
// returned untouched, including their backend choice — even though that
// choice may silently drop the topology's link attributes. The explicit
// choice wins.
func EnsureLinkBackend(args []string) []string {
	for _, tok := range args {
		if tok == linkFlag {
			return args
		}
	}
	return append(args, linkFlag, DefaultLinkBackend)
}
