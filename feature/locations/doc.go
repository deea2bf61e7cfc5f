// Package locations derives candidate sites from registry locations and checks
// them against the monitoring platform.
//
// # Site Building
//
// BuildSites joins the location keys of addressed devices to location rows. Keys
// with no row are reported as unknown; names with several rows use the first one.
//
// # Hierarchy Resolution
//
// The Resolver classifies every site against the remote country, region and city
// lists, top-down:
//
//	blank country          -> country_empty
//	country not listed     -> country_not_found
//	blank region           -> region_empty
//	region not listed      -> region_not_found
//	blank city             -> city_empty
//	city not listed        -> city_not_found
//	otherwise              -> match_all
//
// Names compare exactly and case-sensitively, and the first matching entry of a
// list wins. The country list is fetched once per Classify call; region and city
// lists are fetched at most once per country name and region name. A list that
// cannot be fetched counts as empty, so affected sites fall into the "not found"
// outcome of that level. Sites with a blank latitude or longitude are also listed
// as missing coordinates, independently of their outcome.
//
// City lists are keyed by region name alone, so two countries with a region of the
// same name share one city list within a run.
//
// # Site Existence
//
// CompareExisting marks each site as new or existing against the remote groups.
package locations
