// Package catalog provides the content-management records browsed by the list
// views: content templates, repositories, systems and packages.
//
// Each table is a set of typed records plus a listview.Schema describing its
// columns. Fixed tables reproduce the sample content shipped with the console;
// the popular-repository and package tables are generated from a seed so a
// given seed always yields the same rows.
//
// Use NewRegistry to build every table at once and look tables up by key.
package catalog
