// Package resources 可以放入 hashpool 的常用资源及其描述
package resources
