// Package controlpanel manages company settings objects: stock locations,
// tags and tag groups.
//
// Control-panel lists use their own paging block ({page, pageSize, total}),
// modelled as common.PageInfo.
package controlpanel
