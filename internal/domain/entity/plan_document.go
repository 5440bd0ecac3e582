package entity

import (
	"bytes"
	"encoding/json"
	"time"
)

// 请求级元数据字段名
const (
	FieldUserID    = "userId"
	FieldCreatedAt = "createdAt"
)

// PlanDocument 返回给调用方的训练计划 JSON 对象。
// 模型输出的字段原样保留：未知字段、字符串形式的 reps、缺失字段都不做改写。
type PlanDocument map[string]any

// AttachMetadata 写入用户 ID 与创建时间，覆盖文档中已有的同名字段。
// userID 为空时移除 userId，与 WorkoutPlan 的 omitempty 一致。
func (d PlanDocument) AttachMetadata(userID string, now time.Time) {
	if userID == "" {
		delete(d, FieldUserID)
	} else {
		d[FieldUserID] = userID
	}
	d[FieldCreatedAt] = now.UTC().Format(createdAtTimeLayout)
}

// ProgramName 计划名称，不是字符串时返回空
func (d PlanDocument) ProgramName() string {
	name, _ := d["programName"].(string)
	return name
}

// DayCount weeklySchedule 的天数，不是数组时返回 0
func (d PlanDocument) DayCount() int {
	days, _ := d["weeklySchedule"].([]any)
	return len(days)
}

// Document 将计划转换为 PlanDocument
func (p *WorkoutPlan) Document() (PlanDocument, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc PlanDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}
