// Package analytics provides the statistical layer of the award pipeline:
// distribution summaries, least-squares trend detection with significance
// testing, Pearson correlation ranking, two-sample period comparison,
// geographic concentration measurement and seeded k-means clustering, plus
// rule-based insight synthesis over those results.
//
// Every function is a pure transformation. Calls that cannot proceed return
// a result whose Status field carries an explicit insufficient-data marker;
// they never fail with a numeric error.
package analytics
