// Package profile defines the provider-profile hooks the normalizer
// delegates to: compact date/time resolution, provider-specific station
// name cleanup, product-bitmask decoding, and line normalization. The
// Default profile implements the generic behavior; providers with special
// formatting supply their own implementation.
package profile
