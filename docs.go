// Package burnroom 临时房间（阅后即焚）聊天服务核心
// @title Burn Room API
// @version 1.0
// @description 临时房间的 RESTful API 文档：房间生命周期、成员管理、消息、自动回复、模板、投票与导出
// @description
// @description ## 业务状态码说明
// @description | Code | 说明 |
// @description |------|------|
// @description | 0 | 成功 |
// @description | 10001 | 参数错误 |
// @description | 10004 | 缺少/无效的用户身份 |
// @description | 10005 | 权限不足 |
// @description | 20001 | 房间不存在或已关闭 |
// @description | 20002 | 房间已过期 |
// @description | 20003 | 房间已满 |
// @description | 20004 | 被封禁 |
// @description | 20005 | 房间密码错误 |
// @description | 20006 | 创建房间数已达上限 |
// @description | 20007 | 内容校验失败 |
// @description | 20008 | 房间已停用 |
// @description | 99999 | 内部错误 |
// @description
// @description ## HTTP 状态码说明
// @description - **200**: 业务请求已处理（根据 response.code 判断业务状态）
// @description - **400**: 请求体格式错误
// @description - **401**: 缺少用户身份
// @description - **403**: 全局封禁
// @description
// @description ## 响应格式
// @description ```json
// @description {
// @description   "code": 0,
// @description   "msg": "success",
// @description   "data": {}
// @description }
// @description ```
//
// @host localhost:6789
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description 上游网关认证后的用户 ID；WebSocket 使用 query user_id
package burnroom
