/*
Package observability bridges router lifecycle hooks to Prometheus metrics.

It is optional: the router core has no metrics dependency. Hosts that want
metrics register a Metrics instance's hooks on the router and scrape the
collectors through their own registry (the debug HTTP adapter can mount
promhttp for that).
*/
package observability
