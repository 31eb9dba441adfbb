package spginit

// Space groups run from 1 to spgMax inclusive; the façade rejects any spg
// outside that range before consulting the Wyckoff database.
const spgMax = 230
