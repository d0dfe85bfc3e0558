package util

import (
	"reflect"

	"github.com/google/uuid"
)

// NewCartID 產生購物車token
// 128-bit隨機uuid，全域唯一、不可猜測、不會重複使用
func NewCartID() string {
	return uuid.NewString()
}

// IsNil 檢查介面是否為 nil
// 注意：這個函數會同時檢查介面的型別和值
// 只有當兩者都為 nil 時，才會返回 true
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	switch reflect.TypeOf(i).Kind() {
	case reflect.Ptr, reflect.Map, reflect.Array, reflect.Chan, reflect.Slice:
		return reflect.ValueOf(i).IsNil()
	}

	return false
}
