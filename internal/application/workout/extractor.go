package workout

import (
	"fitsun-api/internal/config"
	"fitsun-api/internal/domain/entity"
	wfnode "fitsun-api/internal/workflow/node"
)

// Extractor 从模型输出文本中提取训练计划
type Extractor struct {
	mode   wfnode.ScanMode
	strict bool
}

// NewExtractor 创建提取器。mode 为 config.ExtractionMode*，strict 开启结构校验
func NewExtractor(mode string, strict bool) *Extractor {
	scan := wfnode.ScanGreedy
	if mode == config.ExtractionModeBalanced {
		scan = wfnode.ScanBalanced
	}
	return &Extractor{mode: scan, strict: strict}
}

// Extract 解码载荷并原样返回；失败时返回 *node.ExtractionError。
// strict 模式下载荷还须能解码为 WorkoutPlan 并通过校验，返回的仍是原始文档。
func (e *Extractor) Extract(raw string) (entity.PlanDocument, error) {
	var doc entity.PlanDocument
	if err := wfnode.DecodeJSONObject(raw, e.mode, &doc); err != nil {
		return nil, err
	}
	if !e.strict {
		return doc, nil
	}

	var plan entity.WorkoutPlan
	if err := wfnode.DecodeJSONObject(raw, e.mode, &plan); err != nil {
		return nil, &wfnode.ExtractionError{Reason: wfnode.ReasonInvalidPlan, Detail: err.Error()}
	}
	if err := plan.Validate(); err != nil {
		return nil, &wfnode.ExtractionError{Reason: wfnode.ReasonInvalidPlan, Detail: err.Error()}
	}
	return doc, nil
}
