// Package core contains the business logic for the BestPrice Checker.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Product, HistoryEntry, etc.)
// - sources: Storefront adapters that extract products from search pages
// - search: Concurrent search pipeline, ranking, and history persistence
// - pricing: Price and rating text parsing
// - services: Enrichment services layered on top of search results
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies in the pipeline itself
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "github.com/404PageFinder/BestPrice-Checker/core/interfaces"
//	    "github.com/404PageFinder/BestPrice-Checker/core/search"
//	    "github.com/404PageFinder/BestPrice-Checker/core/sources"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create the pipeline with its storefront adapters
//	svc := search.NewSearchService(deps,
//	    sources.NewAmazonSource(deps, sources.Options{}),
//	    sources.NewEbaySource(deps, sources.Options{}),
//	)
//
//	// Run a search
//	result, err := svc.RunSearch(ctx, "wireless headphones")
package core
