// Package profile resolves recipients to deliverable device addresses by a
// single point read of the user-info collection. No caching and no retries: a
// transient read failure surfaces to the dispatcher as a hard error and the
// event infrastructure's redelivery takes care of the rest.
package profile
