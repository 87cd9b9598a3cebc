// Package cdpchat provides a documentation-retrieval chatbot for customer
// data platforms. It answers how-to questions about Segment, mParticle,
// Lytics, and Zeotap by searching a pre-scraped, pre-indexed corpus of each
// platform's documentation and formatting the best matching passages into
// a plain-text answer.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, trafilatura/, yaml/) or
// their domain role (e.g., crawl/, chunker/, index/).
package cdpchat
